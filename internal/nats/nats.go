package nats

import (
	"context"
	"log/slog"
	"time"

	"tfhive/internal/config"
	"tfhive/pkg/async"

	libnats "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type NATS struct {
	Logger *slog.Logger
	Config *config.Config

	JS jetstream.JetStream
	KV jetstream.KeyValue
}

func (n *NATS) Init(ctx context.Context) error {
	nc, err := libnats.Connect(n.Config.NATSURL)
	if err != nil {
		return err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return err
	}

	n.JS = js

	if n.Config.NATSInit {
		if err := n.initNATS(ctx); err != nil {
			return err
		}
	}

	kv, err := js.KeyValue(ctx, config.AppName)
	if err != nil {
		return err
	}
	n.KV = kv

	return nil
}

func (n *NATS) HealthCheck(context.Context) error {
	_, err := n.JS.Conn().RTT()
	return err
}

func (n *NATS) Shutdown(context.Context) error {
	return n.JS.Conn().Drain()
}

// Consumer returns the durable consumer feeding the indexer.
func (n *NATS) Consumer(ctx context.Context) (jetstream.Consumer, error) {
	return n.JS.Consumer(ctx, config.AppName, config.PostConsumer)
}

// Consume fetches messages from the durable consumer and exposes them as a
// channel until ctx is canceled.
func (n *NATS) Consume(ctx context.Context, batchSize int) (<-chan async.Result[jetstream.Msg], error) {
	cons, err := n.Consumer(ctx)
	if err != nil {
		return nil, err
	}

	return async.Generator(ctx, func(ctx context.Context, y async.Yielder[jetstream.Msg]) error {
		for {
			select {
			case <-ctx.Done():
				return nil

			default:
				batch, err := cons.Fetch(batchSize)
				if err != nil {
					return err
				}

				for msg := range batch.Messages() {
					y(msg, nil)
				}
			}
		}
	}), nil
}

func (n *NATS) initNATS(ctx context.Context) error {
	n.Logger.Info("Initializing NATS")
	_, err := n.JS.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     config.AppName,
		Subjects: []string{config.AppName + ".*"},
		MaxAge:   24 * time.Hour,
	})
	if err != nil {
		return err
	}
	n.Logger.Info("Stream created or updated", "name", config.AppName)

	_, err = n.JS.CreateOrUpdateConsumer(ctx, config.AppName, jetstream.ConsumerConfig{
		Durable:       config.PostConsumer,
		FilterSubject: config.PostSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return err
	}
	n.Logger.Info("Consumer created or updated", "name", config.PostConsumer)

	_, err = n.JS.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket: config.AppName,
	})
	if err != nil {
		return err
	}
	n.Logger.Info("KeyValue created or updated", "name", config.AppName)

	return nil
}
