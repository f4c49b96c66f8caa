package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tfhive/internal/cmd/flags"
	"tfhive/internal/core"
	"tfhive/internal/geo"
	"tfhive/internal/transform"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var transformCmd = &cli.Command{
	Name:      "transform",
	Usage:     "Transform a single post event from a JSON file and print the cache row",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		flags.GeocoderURL,
		flags.GeocoderTimeout,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		path := c.Args().First()
		if path == "" {
			return fmt.Errorf("expected a path to a JSON file with a post event")
		}

		return run(ctx, c,
			pal.Provide[core.Geocoder](&geo.NominatimGeocoder{}),
			pal.Provide(&geo.Resolver{}),
			pal.Provide(&transform.Transformer{}),
			pal.Provide(&transformRunner{path: path}),
		)
	},
}

type transformRunner struct {
	Transformer *transform.Transformer

	path string
}

func (r *transformRunner) Run(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var event core.RawPostEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return err
	}

	cached, err := r.Transformer.Apply(ctx, &event)
	if err != nil {
		return err
	}

	pp.Println(cached)
	return nil
}
