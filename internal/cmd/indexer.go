package cmd

import (
	"context"

	"tfhive/internal/cmd/flags"
	"tfhive/internal/core"
	"tfhive/internal/geo"
	"tfhive/internal/indexer"
	"tfhive/internal/metrics"
	"tfhive/internal/nats"
	"tfhive/internal/persistence"
	"tfhive/internal/persistence/feedcache"
	"tfhive/internal/persistence/posts"
	"tfhive/internal/transform"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var indexerCmd = &cli.Command{
	Name:  "indexer",
	Usage: "Consume post events from JetStream, transform and cache them",
	Flags: []cli.Flag{
		flags.NATSUrl,
		flags.NATSInit,
		flags.DatabaseURL,
		flags.GeocoderURL,
		flags.GeocoderTimeout,
		flags.Workers,
		flags.MetricsAddr,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide[core.DB](&persistence.DB{}),
			pal.Provide[core.PostRepository](&posts.Repository{}),
			pal.Provide[core.FeedCacheRepository](&feedcache.Repository{}),
			pal.Provide[core.Geocoder](&geo.NominatimGeocoder{}),
			pal.Provide(&geo.Resolver{}),
			pal.Provide(&transform.Transformer{}),
			pal.Provide(&indexer.Indexer{}),
			pal.Provide(&metrics.HTTPServer{}),
			pal.Provide(&metrics.Collector{}),
			nats.Provide(),
		)
	},
}
