package repository

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessPage is one page of a business listing with the total row count.
type BusinessPage struct {
	Businesses []*entity.Business
	Total      int64
}

// BusinessRepository defines the standard operations for business persistence.
type BusinessRepository interface {
	// FindPage retrieves one page of businesses, optionally scoped to a city
	// (uuid.Nil means all cities) and filtered by a case-insensitive name
	// substring.
	FindPage(ctx context.Context, cityID uuid.UUID, page, limit int, search string) (*BusinessPage, error)

	// FindByCity retrieves every visible business of a city, the embed used by
	// the city detail endpoint.
	FindByCity(ctx context.Context, cityID uuid.UUID) ([]*entity.Business, error)

	// FindByID retrieves a single business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBySlug retrieves a single business by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Business, error)

	// Create persists a new business.
	Create(ctx context.Context, business *entity.Business) error

	// Update modifies an existing business record.
	Update(ctx context.Context, business *entity.Business) error

	// Delete removes a business by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
