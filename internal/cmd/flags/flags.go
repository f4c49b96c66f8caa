package flags

import (
	"fmt"
	"slices"

	libnats "github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var NATSUrl = &cli.StringFlag{
	Name:    "nats-url",
	Aliases: []string{"n"},
	Usage:   "The URL of the NATS server",
	Value:   libnats.DefaultURL,
	Sources: cli.EnvVars("NATS_URL"),
}

var NATSInit = &cli.BoolFlag{
	Name:        "nats-init",
	Aliases:     []string{"i"},
	Usage:       "Initialize the NATS server: create streams, consumers, etc.",
	DefaultText: "false",
	Value:       false,
	Sources:     cli.EnvVars("NATS_INIT"),
}

var DatabaseURL = &cli.StringFlag{
	Name:    "database-url",
	Aliases: []string{"d"},
	Usage:   "The URL of the PostgreSQL database",
	Sources: cli.EnvVars("DATABASE_URL"),
}

var NodeURL = &cli.StringFlag{
	Name:    "node-url",
	Usage:   "The websocket URL of the blockchain node event feed",
	Sources: cli.EnvVars("NODE_URL"),
}

var GeocoderURL = &cli.StringFlag{
	Name:    "geocoder-url",
	Usage:   "The base URL of the Nominatim instance",
	Value:   "https://nominatim.openstreetmap.org",
	Sources: cli.EnvVars("GEOCODER_URL"),
}

var GeocoderTimeout = &cli.IntFlag{
	Name:    "geocoder-timeout",
	Usage:   "Timeout for reverse geocoding requests, in seconds",
	Value:   15,
	Sources: cli.EnvVars("GEOCODER_TIMEOUT"),
}

var Workers = &cli.IntFlag{
	Name:    "workers",
	Aliases: []string{"w"},
	Usage:   "The number of concurrent transform workers",
	Value:   8,
	Sources: cli.EnvVars("WORKERS"),
}

var MetricsAddr = &cli.StringFlag{
	Name:    "metrics-addr",
	Usage:   "The address of the metrics server",
	Value:   ":8080",
	Sources: cli.EnvVars("METRICS_ADDR"),
}

// TODO: extract custom EnumFlag
var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}
