package domain

import (
	"context"
	"time"
)

// CloseApproach is one entry from a catalog object's close-approach table.
// Velocity is nil when the catalog reports it as unknown.
type CloseApproach struct {
	Date        string
	Time        time.Time // zero when the catalog date could not be parsed
	VelocityKmS *float64
}

// CatalogRecord contains the physical parameters a NEO catalog knows about
// one object. Diameter is the midpoint of the catalog's min/max estimate,
// nil when the catalog has no estimate at all.
type CatalogRecord struct {
	ID                 string
	Name               string
	DiameterM          *float64
	DefaultVelocityKmS *float64
	Approaches         []CloseApproach
	Hazardous          bool
}

// Catalog looks up near-Earth objects in a remote listing.
type Catalog interface {
	// Lookup fetches a single object by its catalog ID.
	Lookup(ctx context.Context, id string) (CatalogRecord, error)

	// SearchByName scans the paginated listing for an exact
	// (case-insensitive) name match, reading at most maxPages pages.
	SearchByName(ctx context.Context, name string, maxPages int) (CatalogRecord, error)
}
