package config

type Config struct {
	NATSURL  string `flag:"nats-url"`
	NATSInit bool   `flag:"nats-init"`

	DatabaseURL string `flag:"database-url"`

	NodeURL string `flag:"node-url"`

	GeocoderURL        string `flag:"geocoder-url"`
	GeocoderTimeoutSec int    `flag:"geocoder-timeout"`

	Workers     int    `flag:"workers"`
	MetricsAddr string `flag:"metrics-addr"`
	LogLevel    string `flag:"log-level"`
}

const (
	// AppName doubles as the JetStream stream and KV bucket name.
	AppName = "tfhive"

	// PostSubject carries serialized core.RawPostEvent messages.
	PostSubject = "tfhive.post"

	PostConsumer = "tfhive-indexer"
)
