// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/google/uuid"
)

// ErrCityNotFound is returned when a city is not found.
var ErrCityNotFound = errors.New("city not found")

// CityPage is one page of a city listing together with the total row count,
// feeding the page/limit/total/items envelope.
type CityPage struct {
	Cities []*entity.City
	Total  int64
}

// CityRepository defines the standard operations for city persistence.
type CityRepository interface {
	// FindPage retrieves one page of cities ordered by display order then name.
	// An empty search matches everything; otherwise names are matched
	// case-insensitively by substring.
	FindPage(ctx context.Context, page, limit int, search string) (*CityPage, error)

	// FindByID retrieves a single city by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error)

	// FindBySlug retrieves a single city by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.City, error)

	// Create persists a new city.
	Create(ctx context.Context, city *entity.City) error

	// Update modifies an existing city record.
	Update(ctx context.Context, city *entity.City) error

	// Delete removes a city by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetFeatured flips the featured flag, returning ErrCityNotFound when the
	// row does not exist. Serves the optimistic toggle on the dashboard.
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
}
