package impl

import (
	"context"
	"strings"
	"sync"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/geo"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// browser implements usecase.Browser: one browsing session's view state over
// the directory. All fields are guarded by mu; loads run outside the lock and
// re-check their generation before committing, so a response from a
// superseded load is dropped instead of clobbering a newer view.
type browser struct {
	directory usecase.DirectoryUsecase
	mapCfg    config.MapConfig
	pageLimit int

	mu         sync.Mutex
	generation uint64
	mode       usecase.ViewMode
	cities     []*entity.City
	businesses []*entity.Business
	selCity    *entity.City
	selBiz     *entity.Business
	filterTerm string
	lastErr    error
}

// NewBrowser creates a fresh browsing session in the cities view.
func NewBrowser(directory usecase.DirectoryUsecase, cfg *config.Config) usecase.Browser {
	return &browser{
		directory: directory,
		mapCfg:    cfg.Map,
		pageLimit: cfg.Directory.BrowserLimit,
		mode:      usecase.ViewModeCities,
	}
}

// beginLoad bumps the generation and returns the ticket this load must hold
// when it commits.
func (b *browser) beginLoad() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generation++

	return b.generation
}

// LoadCities fetches the full city list in one large page. On failure the
// list stays empty and the error is surfaced; there is no retry.
func (b *browser) LoadCities(ctx context.Context) error {
	gen := b.beginLoad()

	out, err := b.directory.ListCities(ctx, usecase.ListCitiesInput{Page: 1, Limit: b.pageLimit})

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		// A newer load superseded this one; drop the response.
		return nil
	}

	if err != nil {
		b.cities = nil
		b.lastErr = err

		return err
	}

	b.cities = out.Cities
	b.lastErr = nil

	return nil
}

// SelectCity loads the city's businesses and switches to the businesses view.
// On failure the previous view is kept and the error recorded inline.
func (b *browser) SelectCity(ctx context.Context, id uuid.UUID) error {
	gen := b.beginLoad()

	out, err := b.directory.GetCityWithBusinesses(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		return nil
	}

	if err != nil {
		b.lastErr = err

		return err
	}

	b.mode = usecase.ViewModeBusinesses
	b.selCity = out.City
	b.businesses = out.Businesses
	b.selBiz = nil
	b.filterTerm = ""
	b.lastErr = nil

	return nil
}

// SelectBusiness records the selection inside the businesses view and returns
// the claim-gate branch for the click. The view mode never changes here.
func (b *browser) SelectBusiness(id uuid.UUID) (usecase.SelectBusinessOutcome, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.mode != usecase.ViewModeBusinesses {
		return "", domainerrors.ErrBusinessNotFound.WrapMessage("no businesses are shown")
	}

	for _, biz := range b.businesses {
		if biz.ID == id {
			b.selBiz = biz
			if biz.IsApproved() {
				return usecase.OutcomeClaimFlow, nil
			}

			return usecase.OutcomePublicDetail, nil
		}
	}

	return "", domainerrors.ErrBusinessNotFound
}

// Back returns to the cities view, clearing business state and the filter.
func (b *browser) Back() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.mode != usecase.ViewModeBusinesses {
		return
	}

	// Invalidate any in-flight business load.
	b.generation++
	b.mode = usecase.ViewModeCities
	b.businesses = nil
	b.selCity = nil
	b.selBiz = nil
	b.filterTerm = ""
	b.lastErr = nil
}

// Filter sets the case-insensitive substring filter for the current view.
func (b *browser) Filter(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filterTerm = strings.ToLower(strings.TrimSpace(term))
}

// Mode reports the current view mode.
func (b *browser) Mode() usecase.ViewMode {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.mode
}

// Cities returns the filtered city list.
func (b *browser) Cities() []*entity.City {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.filterTerm == "" || b.mode != usecase.ViewModeCities {
		return b.cities
	}

	filtered := make([]*entity.City, 0, len(b.cities))
	for _, city := range b.cities {
		if strings.Contains(strings.ToLower(city.Name), b.filterTerm) {
			filtered = append(filtered, city)
		}
	}

	return filtered
}

// Businesses returns the filtered business list.
func (b *browser) Businesses() []*entity.Business {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.filterTerm == "" || b.mode != usecase.ViewModeBusinesses {
		return b.businesses
	}

	filtered := make([]*entity.Business, 0, len(b.businesses))
	for _, biz := range b.businesses {
		if strings.Contains(strings.ToLower(biz.Name), b.filterTerm) {
			filtered = append(filtered, biz)
		}
	}

	return filtered
}

// SelectedCity returns the city whose businesses are shown, if any.
func (b *browser) SelectedCity() *entity.City {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.selCity
}

// SelectedBusiness returns the business whose popup is open, if any.
func (b *browser) SelectedBusiness() *entity.Business {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.selBiz
}

// LastError returns the inline error of the most recent failed load.
func (b *browser) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.lastErr
}

// Markers returns validated markers for the current view. Entities whose
// coordinates fail the finite-float parse are silently excluded.
func (b *browser) Markers() []usecase.Marker {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.mode {
	case usecase.ViewModeBusinesses:
		markers := make([]usecase.Marker, 0, len(b.businesses))
		for _, biz := range b.businesses {
			point, ok := geo.ParsePoint(biz.Latitude, biz.Longitude)
			if !ok {
				continue
			}
			markers = append(markers, usecase.Marker{
				ID:      biz.ID,
				Name:    biz.Name,
				Point:   point,
				IconURL: biz.MarkerURL,
			})
		}

		return markers
	default:
		markers := make([]usecase.Marker, 0, len(b.cities))
		for _, city := range b.cities {
			point, ok := geo.ParsePoint(city.Latitude, city.Longitude)
			if !ok {
				continue
			}
			markers = append(markers, usecase.Marker{
				ID:    city.ID,
				Name:  city.Name,
				Point: point,
			})
		}

		return markers
	}
}

// Viewport returns the bound covering all markers when any exist; with a
// selected mappable city it recenters there at city zoom, and otherwise falls
// back to the configured default center.
func (b *browser) Viewport() usecase.Viewport {
	markers := b.Markers()

	b.mu.Lock()
	defer b.mu.Unlock()

	// A selected business wins: recenter on it at business zoom.
	if b.selBiz != nil {
		if point, ok := geo.ParsePoint(b.selBiz.Latitude, b.selBiz.Longitude); ok {
			return usecase.Viewport{Center: point, Zoom: b.mapCfg.BusinessZoom}
		}
	}

	points := make([]orb.Point, 0, len(markers))
	for _, m := range markers {
		points = append(points, m.Point)
	}

	if bound, ok := geo.Bounds(points); ok {
		return usecase.Viewport{FitBound: true, Bound: bound, Center: geo.Center(bound), Zoom: b.zoomForMode()}
	}

	if b.mode == usecase.ViewModeBusinesses && b.selCity != nil {
		if point, ok := geo.ParsePoint(b.selCity.Latitude, b.selCity.Longitude); ok {
			return usecase.Viewport{Center: point, Zoom: b.mapCfg.CityZoom}
		}
	}

	return usecase.Viewport{
		Center: orb.Point{b.mapCfg.DefaultLongitude, b.mapCfg.DefaultLatitude},
		Zoom:   b.mapCfg.DefaultZoom,
	}
}

func (b *browser) zoomForMode() int {
	if b.mode == usecase.ViewModeBusinesses {
		return b.mapCfg.CityZoom
	}

	return b.mapCfg.DefaultZoom
}
