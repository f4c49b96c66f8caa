// Package indexer consumes raw post events from JetStream, runs the
// transform and upserts the resulting cache rows.
package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tfhive/internal/config"
	"tfhive/internal/core"
	"tfhive/internal/nats"
	"tfhive/internal/transform"
	"tfhive/pkg/async"
)

const fetchBatchSize = 100

var (
	postsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tfhive_posts_processed_total",
		Help: "The total number of processed post events",
	}, []string{"status"})

	integrityErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tfhive_integrity_errors_total",
		Help: "The total number of posts rejected by the vote/rshares integrity check",
	})

	cacheUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tfhive_cache_upserts_total",
		Help: "The total number of cache rows upserted",
	})
)

type Indexer struct {
	Logger *slog.Logger
	Config *config.Config

	NATS        *nats.NATS
	Transformer *transform.Transformer

	PostRepo      core.PostRepository
	FeedCacheRepo core.FeedCacheRepository
}

func (ix *Indexer) Init(_ context.Context) error {
	ix.Logger = ix.Logger.With("component", "indexer.Indexer")
	return nil
}

// Run consumes until the context is canceled. Each post transforms
// independently; the pool bound keeps concurrent geocode lookups in check.
func (ix *Indexer) Run(ctx context.Context) error {
	ch, err := ix.NATS.Consume(ctx, fetchBatchSize)
	if err != nil {
		return err
	}

	workers := ix.Config.Workers
	if workers <= 0 {
		workers = 1
	}

	ix.Logger.Info("consuming post events", "workers", workers)

	return async.WorkerPool(ctx, workers, ch, func(ctx context.Context, res async.Result[jetstream.Msg]) error {
		msg, err := res.Unpack()
		if err != nil {
			return err
		}
		return ix.process(ctx, msg)
	})
}

func (ix *Indexer) process(ctx context.Context, msg jetstream.Msg) error {
	event := &core.RawPostEvent{}
	if err := json.Unmarshal(msg.Data(), event); err != nil {
		postsProcessed.WithLabelValues("malformed").Inc()
		ix.Logger.Error("dropping undecodable post event", "error", err)
		return msg.Term()
	}

	cached, err := ix.Transformer.Apply(ctx, event)
	if err != nil {
		if errors.Is(err, core.ErrVoteMismatch) || errors.Is(err, core.ErrBadAmount) {
			// The feed itself is inconsistent. Never commit guessed values;
			// drop the event and scream.
			integrityErrors.Inc()
			postsProcessed.WithLabelValues("integrity_error").Inc()
			ix.Logger.Error("data integrity violation, post not cached",
				"post_id", event.PostID, "author", event.Post.Author,
				"permlink", event.Post.Permlink, "error", err)
			return msg.Term()
		}

		postsProcessed.WithLabelValues("error").Inc()
		ix.Logger.Error("transform failed, redelivering",
			"post_id", event.PostID, "error", err)
		return msg.Nak()
	}

	if err := ix.PostRepo.Upsert(ctx, cached); err != nil {
		postsProcessed.WithLabelValues("error").Inc()
		ix.Logger.Error("cache upsert failed, redelivering",
			"post_id", event.PostID, "error", err)
		return msg.Nak()
	}
	cacheUpserts.Inc()

	// A brand-new root post lands in its author's feed.
	if event.IsNew && cached.Depth == 0 {
		err = ix.FeedCacheRepo.Insert(ctx, core.FeedCacheEntry{
			PostID:    event.PostID,
			AccountID: event.AccountID,
			CreatedAt: cached.CreatedAt,
		})
		if err != nil {
			postsProcessed.WithLabelValues("error").Inc()
			ix.Logger.Error("feed cache insert failed, redelivering",
				"post_id", event.PostID, "error", err)
			return msg.Nak()
		}
	}

	postsProcessed.WithLabelValues("ok").Inc()
	return msg.Ack()
}
