// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// City is a directory entry grouping businesses under one geographic place.
// Coordinates are stored as free-text strings because they arrive from back
// office imports and may be missing or malformed; a city is mappable only if
// both values parse to finite numbers (see internal/geo.ParsePoint).
type City struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the city.
	Name          string    // Display name, e.g., "Austin".
	Slug          string    // URL-safe identifier used by public pages.
	Featured      bool      // Marks the city for the featured section of the marketing site.
	Latitude      string    // Raw latitude, possibly empty or malformed.
	Longitude     string    // Raw longitude, possibly empty or malformed.
	DisplayOrder  int       // Manual ordering for listing pages, lower comes first.
	PictureURL    string    // Hero/thumbnail picture for the city card.
	BusinessCount int       // Number of businesses currently attached to the city.
	CreatedAt     time.Time // Timestamp of when this city was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}
