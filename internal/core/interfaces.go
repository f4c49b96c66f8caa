package core

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Geocoder resolves a coordinate pair to a reverse-geocode result. The
// production implementation lives in pkg/nominatim; tests use fakes.
// Implementations must honor ctx cancellation and their own request timeout.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*ReverseResult, error)
}

// ReverseResult is the raw reverse-geocode response: a place-type name, a
// numeric place id (empty means absent) and an address field map. Missing
// address fields are simply absent from the map.
type ReverseResult struct {
	OSMType string
	OSMID   string
	Address map[string]string
}

type DB interface {
	Model(a any) *gorm.DB
	EstimatedCount(tableName string) (int64, error)
	DB() (*sql.DB, error)
}

type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Migrate(ctx context.Context, version uint) error
}

type PostRepository interface {
	// Upsert replaces the cache row for post.PostID, last write wins. Scores
	// of an already-paid-out row are left untouched.
	Upsert(ctx context.Context, post *CachedPost) error
}

type FeedCacheRepository interface {
	Insert(ctx context.Context, entries ...FeedCacheEntry) error
}
