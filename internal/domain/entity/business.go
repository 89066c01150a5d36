package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BusinessStatusApproved is the status key that locks a listing for claiming.
// The comparison is case-insensitive against the stored free-text value.
const BusinessStatusApproved = "approved"

// Business is a single directory listing. Like City, its coordinates are raw
// strings validated only at map-marker construction time.
type Business struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the business.
	CityID         uuid.UUID // The city this listing belongs to.
	Name           string    // Display name of the business.
	Slug           string    // URL-safe identifier used by public detail pages.
	Description    string    // Free-text description shown on the detail page.
	Address        string    // Street address line.
	CityName       string    // Denormalized city name as captured at import time.
	State          string    // State or province.
	Country        string    // Country.
	Zipcode        string    // Postal code.
	Active         bool      // Inactive listings are hidden from public pages.
	Blocked        bool      // Blocked listings are withheld regardless of Active.
	BusinessStatus string    // Free-text status key, e.g., "approved", "pending".
	Latitude       string    // Raw latitude, possibly empty or malformed.
	Longitude      string    // Raw longitude, possibly empty or malformed.
	LogoURL        string    // Logo image shown in lists and popups.
	MarkerURL      string    // Custom map marker image, optional.
	ClaimedFee     int64     // Claim fee in cents, informational on the listing.
	ExternalID     string    // Identifier from the upstream data source.
	CreatedAt      time.Time // Timestamp of when this listing was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// IsApproved reports whether the listing carries the "approved" status that
// routes a click into the claim workflow instead of the public detail page.
func (b *Business) IsApproved() bool {
	return strings.EqualFold(strings.TrimSpace(b.BusinessStatus), BusinessStatusApproved)
}
