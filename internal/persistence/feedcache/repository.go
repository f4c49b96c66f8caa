package feedcache

import (
	"context"

	"gorm.io/gorm/clause"

	"tfhive/internal/core"
)

type Repository struct {
	DB core.DB
}

// Insert adds feed entries, silently skipping pairs that already exist. The
// sync loop may replay events; feed membership is idempotent.
func (r *Repository) Insert(ctx context.Context, entries ...core.FeedCacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.DB.
		Model(&core.FeedCacheEntry{}).
		WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entries).Error
}
