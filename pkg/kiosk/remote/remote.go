// Package remote reads key presses from a remote-control input device on its
// own goroutine and hands them to the frame loop through a buffered channel.
package remote

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/moonwhale/setup/pkg/kiosk/input"
	"go.uber.org/atomic"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("remote input is only supported on linux")

const bufferSize = 32

// source yields mapped key presses. Next blocks until a press arrives or the
// source fails; Close must unblock a pending Next.
type source interface {
	Next() (input.KeyCode, error)
	Close() error
}

type Remote struct {
	source    source
	path      string
	logger    *slog.Logger
	events    chan input.Event
	connected atomic.Bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func start(ctx context.Context, src source, path string, logger *slog.Logger) *Remote {
	ctx, cancel := context.WithCancel(ctx)
	r := &Remote{
		source: src,
		path:   path,
		logger: logger,
		events: make(chan input.Event, bufferSize),
		cancel: cancel,
	}
	r.connected.Store(true)

	r.wg.Add(2)
	go r.read(ctx)
	go func() {
		defer r.wg.Done()
		<-ctx.Done()
		src.Close()
	}()

	return r
}

func (r *Remote) read(ctx context.Context) {
	defer r.wg.Done()
	defer r.connected.Store(false)

	for {
		code, err := r.source.Next()
		if err != nil {
			if ctx.Err() == nil {
				r.logger.Warn("Remote input device lost", "path", r.path, "error", err)
			}
			return
		}

		select {
		case r.events <- input.RemoteKeyDown(code):
		case <-ctx.Done():
			return
		default:
			r.logger.Debug("Remote event buffer full, dropping", "key", code.Name())
		}
	}
}

// Poll drains up to max pending events without blocking. A nil Remote has none.
func (r *Remote) Poll(max int) []input.Event {
	if r == nil {
		return nil
	}

	var events []input.Event
	for len(events) < max {
		select {
		case ev := <-r.events:
			events = append(events, ev)
		default:
			return events
		}
	}
	return events
}

// Connected reports whether the reader is still receiving from the device.
func (r *Remote) Connected() bool {
	return r != nil && r.connected.Load()
}

// Close stops the reader and waits for it to exit.
func (r *Remote) Close() {
	if r == nil {
		return
	}
	r.cancel()
	r.wg.Wait()
}
