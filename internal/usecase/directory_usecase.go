// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListCitiesInput defines paging and filtering for the city list.
type ListCitiesInput struct {
	Page   int
	Limit  int
	Search string
}

// CityInput carries the writable fields of a city for create and update.
type CityInput struct {
	Name         string
	Slug         string
	Featured     bool
	Latitude     string
	Longitude    string
	DisplayOrder int
	PictureURL   string
}

// BusinessInput carries the writable fields of a business for create and update.
type BusinessInput struct {
	CityID         uuid.UUID
	Name           string
	Slug           string
	Description    string
	Address        string
	CityName       string
	State          string
	Country        string
	Zipcode        string
	Active         bool
	Blocked        bool
	BusinessStatus string
	Latitude       string
	Longitude      string
	LogoURL        string
	MarkerURL      string
	ClaimedFee     int64
	ExternalID     string
}

// --- Output DTOs ---

// CityListOutput is the paginated city list envelope.
type CityListOutput struct {
	Page   int
	Limit  int
	Total  int64
	Cities []*entity.City
}

// CityDetailOutput is a city together with its visible businesses.
type CityDetailOutput struct {
	City       *entity.City
	Businesses []*entity.Business
}

// DirectoryUsecase defines the server-side operations of the business
// directory. This is the contract the delivery layer and the map browser
// depend on.
type DirectoryUsecase interface {
	// ListCities returns one page of cities ordered for display.
	ListCities(ctx context.Context, input ListCitiesInput) (*CityListOutput, error)

	// GetCityWithBusinesses returns a city detail embedding its businesses.
	GetCityWithBusinesses(ctx context.Context, cityID uuid.UUID) (*CityDetailOutput, error)

	// GetBusinessBySlug returns a single visible business for the public
	// detail page.
	GetBusinessBySlug(ctx context.Context, slug string) (*entity.Business, error)

	// CreateCity adds a new city to the directory.
	CreateCity(ctx context.Context, input CityInput) (*entity.City, error)

	// UpdateCity replaces the writable fields of an existing city.
	UpdateCity(ctx context.Context, id uuid.UUID, input CityInput) (*entity.City, error)

	// DeleteCity removes a city.
	DeleteCity(ctx context.Context, id uuid.UUID) error

	// SetCityFeatured toggles the featured flag, the server side of the
	// optimistic toggle in the back office UI.
	SetCityFeatured(ctx context.Context, id uuid.UUID, featured bool) error

	// CreateBusiness adds a new business listing.
	CreateBusiness(ctx context.Context, input BusinessInput) (*entity.Business, error)

	// UpdateBusiness replaces the writable fields of an existing listing.
	UpdateBusiness(ctx context.Context, id uuid.UUID, input BusinessInput) (*entity.Business, error)

	// DeleteBusiness removes a business listing.
	DeleteBusiness(ctx context.Context, id uuid.UUID) error
}
