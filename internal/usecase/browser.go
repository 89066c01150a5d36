package usecase

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ViewMode is the browser's current list view.
type ViewMode string

const (
	// ViewModeCities shows the city list with one marker per mappable city.
	ViewModeCities ViewMode = "cities"
	// ViewModeBusinesses shows one city's businesses and their markers.
	ViewModeBusinesses ViewMode = "businesses"
)

// SelectBusinessOutcome is the claim-gate branch taken when a business marker
// or list row is clicked.
type SelectBusinessOutcome string

const (
	// OutcomeClaimFlow routes an "approved" listing into the claim workflow.
	OutcomeClaimFlow SelectBusinessOutcome = "claim_flow"
	// OutcomePublicDetail routes every other listing to its public detail page.
	OutcomePublicDetail SelectBusinessOutcome = "public_detail"
)

// Marker is a validated map marker. Only entities whose string coordinates
// parse to finite floats produce markers.
type Marker struct {
	ID      uuid.UUID
	Name    string
	Point   orb.Point // lng, lat order per orb convention
	IconURL string
}

// Viewport describes where the map should look. When FitBound is true the map
// fits Bound; otherwise it centers on Center at Zoom.
type Viewport struct {
	FitBound bool
	Bound    orb.Bound
	Center   orb.Point
	Zoom     int
}

// Browser is one browsing session over the directory: a small state machine
// (cities -> businesses -> cities) holding the current lists, selection,
// filter term and map viewport. Implementations are safe for concurrent use
// so a slow city-detail response can never clobber a newer view.
type Browser interface {
	// LoadCities fetches the city list. On failure the previous list is kept
	// empty and the error is surfaced; there is no retry.
	LoadCities(ctx context.Context) error

	// SelectCity loads the city's businesses and switches to the businesses
	// view. On failure the previous view is kept and the error is recorded
	// inline.
	SelectCity(ctx context.Context, id uuid.UUID) error

	// SelectBusiness records the selection inside the businesses view and
	// returns which branch the click takes. It never changes the view mode.
	SelectBusiness(id uuid.UUID) (SelectBusinessOutcome, error)

	// Back returns from businesses to cities, clearing the business list,
	// selections and search term.
	Back()

	// Filter sets the case-insensitive substring filter over the current
	// view's list. An empty term shows the full list.
	Filter(term string)

	// Mode reports the current view mode.
	Mode() ViewMode

	// Cities returns the filtered city list of the cities view.
	Cities() []*entity.City

	// Businesses returns the filtered business list of the businesses view.
	Businesses() []*entity.Business

	// SelectedCity returns the city whose businesses are shown, if any.
	SelectedCity() *entity.City

	// SelectedBusiness returns the business whose popup is open, if any.
	SelectedBusiness() *entity.Business

	// LastError returns the inline error of the most recent failed load.
	LastError() error

	// Markers returns validated markers for the current view. Malformed
	// coordinates are silently excluded, never an error.
	Markers() []Marker

	// Viewport returns the bound covering all markers when any exist, else
	// the configured default center and zoom.
	Viewport() Viewport
}
