package cmd

import (
	"context"

	"tfhive/internal/chain"
	"tfhive/internal/cmd/flags"
	"tfhive/internal/nats"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var subscriberCmd = &cli.Command{
	Name:  "subscriber",
	Usage: "Subscribe to the node's post events, forward them to NATS JetStream",
	Flags: []cli.Flag{
		flags.NATSUrl,
		flags.NATSInit,
		flags.NodeURL,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&chain.Subscriber{}),
			pal.Provide(&chain.Forwarder{}),
			nats.Provide(),
		)
	},
}
