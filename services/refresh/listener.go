// Package refresh keeps the gateway's view of the core API current: a
// websocket listener receives change events, a debouncer coalesces bursts,
// and a reconciler re-fetches authoritative state wholesale.
package refresh

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// debounceWindow is the trailing-edge window applied per event category.
const debounceWindow = 500 * time.Millisecond

// ChangeEvent is the shape the core API pushes on its ws channel.
type ChangeEvent struct {
	Category string `json:"category"`
}

// Listener maintains the subscription to the core API's push channel for the
// lifetime of the process: registered on start, deregistered on shutdown,
// reconnecting with backoff in between.
type Listener struct {
	URL       string
	Debouncer *Debouncer
	Logger    *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewListener wires a listener that forwards every event category to the
// debouncer, which in turn drives refresh.
func NewListener(url string, debouncer *Debouncer, logger *zap.Logger) *Listener {
	return &Listener{
		URL:       url,
		Debouncer: debouncer,
		Logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start begins the connect/read loop in the background.
func (l *Listener) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	go l.run(ctx)
}

// Stop deregisters: the connection closes and pending refreshes are dropped.
func (l *Listener) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	<-l.done
	l.Debouncer.Stop()
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.done)

	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.URL, nil)
		if err != nil {
			l.Logger.Warn("core ws dial failed, retrying",
				zap.String("url", l.URL),
				zap.Duration("backoff", backoff),
				zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}

		l.Logger.Info("core ws connected", zap.String("url", l.URL))
		backoff = time.Second

		// Close the socket when the listener stops so the read loop unblocks.
		closed := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				_ = conn.Close()
			case <-closed:
			}
		}()

		l.readEvents(conn)
		close(closed)
		_ = conn.Close()
	}
}

func (l *Listener) readEvents(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			l.Logger.Warn("core ws read failed", zap.Error(err))
			return
		}

		var event ChangeEvent
		if err := json.Unmarshal(data, &event); err != nil {
			l.Logger.Debug("ignoring malformed core ws event", zap.Error(err))
			continue
		}
		if event.Category == "" {
			continue
		}
		l.Debouncer.Trigger(event.Category)
	}
}
