package posts

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"gorm.io/gorm/clause"

	"tfhive/internal/core"
)

// updateColumns is everything a recomputation may overwrite. Last write wins
// on the full record; there is no merging.
var updateColumns = []string{
	"author", "permlink", "category",
	"latitude", "longitude", "osm_type", "osm_id",
	"country_code", "subdivision", "city", "suburb",
	"is_travelfeed", "curation_score",
	"depth", "children",
	"author_rep", "flag_weight", "total_votes", "up_votes",
	"title", "preview", "img_url",
	"payout", "promoted", "created_at", "payout_at", "updated_at", "is_paidout",
	"is_nsfw", "is_declined", "is_full_power", "is_hidden", "is_grayed",
	"rshares", "sc_trend", "sc_hot",
	"body", "votes", "json", "raw_json",
}

// frozenScoreColumns drops the trend/hot scores: once a post is paid out its
// scores never move again and the partial feed indexes rely on that.
var frozenScoreColumns = lo.Without(updateColumns, "sc_trend", "sc_hot")

type Repository struct {
	Logger *slog.Logger
	DB     core.DB
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "posts.Repository")
	return nil
}

func (r *Repository) Upsert(ctx context.Context, post *core.CachedPost) error {
	columns := updateColumns
	if post.IsPaidout {
		columns = frozenScoreColumns
	}

	return r.DB.
		Model(&core.CachedPost{}).
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(post).Error
}
