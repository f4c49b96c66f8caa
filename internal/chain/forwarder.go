package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zhulik/pips"
	"github.com/zhulik/pips/apply"

	libnats "github.com/nats-io/nats.go"

	"tfhive/internal/config"
	"tfhive/internal/core"
	"tfhive/internal/nats"
)

var (
	eventsForwarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tfhive_node_events_forwarded_total",
		Help: "The total number of node post events forwarded to JetStream",
	}, []string{"is_new"})
)

// Forwarder pipes subscriber events into the post stream, deduplicated by
// message id, and advances the stored cursor after each publish.
type Forwarder struct {
	Logger *slog.Logger
	Sub    *Subscriber
	NATS   *nats.NATS
}

func (f *Forwarder) Init(_ context.Context) error {
	f.Logger = f.Logger.With("component", "chain.Forwarder")
	return nil
}

func (f *Forwarder) Run(ctx context.Context) error {
	return pips.New[*core.RawPostEvent, any]().
		Then(apply.Each(countEvent)).
		Then(apply.Map(f.publish)).
		Run(ctx, f.Sub.C()).
		Wait(ctx)
}

func (f *Forwarder) publish(ctx context.Context, event *core.RawPostEvent) (any, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	msgID := messageID(event)

	msg := &libnats.Msg{
		Subject: config.PostSubject,
		Data:    payload,
		Header: libnats.Header{
			libnats.MsgIdHdr: []string{msgID},
		},
	}

	if _, err = f.NATS.JS.PublishMsg(ctx, msg); err != nil {
		return nil, err
	}

	_, err = f.NATS.KV.Put(ctx, cursorKey, []byte(fmt.Sprintf("%d", event.Timestamp)))
	if err != nil {
		return nil, err
	}

	f.Logger.Debug("published post event", "id", msgID, "cursor", event.Timestamp)
	return nil, nil
}

func countEvent(_ context.Context, event *core.RawPostEvent) error {
	eventsForwarded.WithLabelValues(fmt.Sprintf("%t", event.IsNew)).Inc()
	return nil
}

func messageID(event *core.RawPostEvent) string {
	return fmt.Sprintf("%s/%s-%d", event.Post.Author, event.Post.Permlink, event.Timestamp)
}
