// Package chain subscribes to a node's post-event feed and forwards it into
// JetStream for the indexer.
package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/zhulik/pips"

	"tfhive/internal/config"
	"tfhive/internal/core"
	"tfhive/internal/nats"
)

const cursorKey = "last_event_timestamp"

type Subscriber struct {
	Logger *slog.Logger
	Config *config.Config
	NATS   *nats.NATS

	ch chan pips.D[*core.RawPostEvent]
}

func (s *Subscriber) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "chain.Subscriber")
	s.ch = make(chan pips.D[*core.RawPostEvent])
	return nil
}

func (s *Subscriber) Shutdown(_ context.Context) error {
	close(s.ch)
	return nil
}

// C exposes decoded node events to the forwarder.
func (s *Subscriber) C() <-chan pips.D[*core.RawPostEvent] {
	return s.ch
}

// Run keeps a websocket subscription alive, resuming from the stored cursor
// on every (re)connect.
func (s *Subscriber) Run(ctx context.Context) error {
	for {
		err := s.run(ctx)
		if err == nil || errors.Is(err, context.Canceled) {
			return nil
		}

		s.Logger.Error("error reading node feed, reconnecting in 1 second", "error", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(1 * time.Second):
		}
	}
}

func (s *Subscriber) run(ctx context.Context) error {
	url := s.Config.NodeURL

	cursor, err := s.cursor(ctx)
	if err != nil {
		return err
	}
	if cursor > 0 {
		url = fmt.Sprintf("%s?cursor=%d", url, cursor)
	}

	s.Logger.Info("subscribing to node post events", "url", url)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		event := &core.RawPostEvent{}
		if err := json.Unmarshal(message, event); err != nil {
			s.Logger.Warn("dropping undecodable node event", "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case s.ch <- pips.NewD(event):
		}
	}
}

func (s *Subscriber) cursor(ctx context.Context) (int64, error) {
	entry, err := s.NATS.KV.Get(ctx, cursorKey)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return strconv.ParseInt(string(entry.Value()), 10, 64)
}
