package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/readmodel"
)

// Publisher receives every dispatch state change.
type Publisher interface {
	Publish(state readmodel.DispatchRM)
}

// Dispatcher sends status notifications in the background. A send is never
// retried and its outcome is only visible through Lookup, the log and the
// publisher.
type Dispatcher struct {
	sender    Sender
	publisher Publisher
	clock     clock.Clock
	logger    *slog.Logger

	// sendCtx outlives callers; it is cancelled only when Shutdown gives up.
	sendCtx    context.Context
	cancelSend context.CancelFunc
	wg         sync.WaitGroup

	mu     sync.RWMutex
	states map[string]readmodel.DispatchRM
	closed bool
}

func NewDispatcher(sender Sender, publisher Publisher, clk clock.Clock, logger *slog.Logger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		sender:     sender,
		publisher:  publisher,
		clock:      clk,
		logger:     logger,
		sendCtx:    ctx,
		cancelSend: cancel,
		states:     make(map[string]readmodel.DispatchRM),
	}
}

// Notify returns immediately. Request cancellation does not stop the send.
func (d *Dispatcher) Notify(ctx context.Context, n commands.StatusNotification) {
	kind, ok := KindFor(n.Status)
	if !ok {
		d.logger.Warn("No notification template for status",
			slog.String("request_id", n.RequestID),
			slog.String("status", n.Status.String()))
		return
	}
	msg := Compose(kind, n)

	state := readmodel.DispatchRM{
		RequestID: n.RequestID,
		Kind:      string(kind),
		Recipient: msg.To,
		Subject:   msg.Subject,
		State:     readmodel.DispatchInFlight,
		StartedAt: d.clock.Now(),
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("Dispatcher is shut down, notification skipped", slog.String("request_id", n.RequestID))
		return
	}
	d.states[n.RequestID] = state
	d.wg.Add(1)
	d.mu.Unlock()

	d.publish(state)
	d.logger.InfoContext(ctx, "Notification dispatched",
		slog.String("request_id", n.RequestID),
		slog.String("kind", string(kind)),
		slog.String("to", msg.To))

	go d.deliver(state, msg)
}

func (d *Dispatcher) deliver(state readmodel.DispatchRM, msg Message) {
	defer d.wg.Done()

	err := d.sender.Send(d.sendCtx, msg)

	finished := d.clock.Now()
	state.FinishedAt = &finished
	switch {
	case err == nil:
		state.State = readmodel.DispatchSent
		d.logger.Info("Notification sent",
			slog.String("request_id", state.RequestID),
			slog.String("kind", state.Kind),
			slog.String("to", state.Recipient))
	case errors.Is(err, context.Canceled):
		state.State = readmodel.DispatchCancelled
		state.Error = err.Error()
		d.logger.Warn("Notification abandoned at shutdown",
			slog.String("request_id", state.RequestID))
	default:
		state.State = readmodel.DispatchFailed
		state.Error = err.Error()
		d.logger.Error("Notification failed",
			slog.String("request_id", state.RequestID),
			slog.String("kind", state.Kind),
			slog.String("to", state.Recipient),
			slog.String("error", err.Error()))
	}

	d.mu.Lock()
	d.states[state.RequestID] = state
	d.mu.Unlock()
	d.publish(state)
}

func (d *Dispatcher) publish(state readmodel.DispatchRM) {
	if d.publisher != nil {
		d.publisher.Publish(state)
	}
}

func (d *Dispatcher) Lookup(requestID string) (readmodel.DispatchRM, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.states[requestID]
	return s, ok
}

func (d *Dispatcher) InFlight() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := 0
	for _, s := range d.states {
		if s.InFlight() {
			n++
		}
	}
	return n
}

// Shutdown stops accepting notifications and waits for in-flight sends.
// When ctx ends first the remaining sends are cancelled and not waited for.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancelSend()
		return nil
	case <-ctx.Done():
		d.cancelSend()
		return ctx.Err()
	}
}
