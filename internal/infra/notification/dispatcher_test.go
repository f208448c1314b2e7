//go:build unit

package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedSender blocks each send until release is closed.
type gatedSender struct {
	mu      sync.Mutex
	sent    []Message
	release chan struct{}
	err     error
}

func newGatedSender() *gatedSender {
	return &gatedSender{release: make(chan struct{})}
}

func (s *gatedSender) Send(ctx context.Context, msg Message) error {
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *gatedSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type recordingPublisher struct {
	mu     sync.Mutex
	states []readmodel.DispatchRM
}

func (p *recordingPublisher) Publish(s readmodel.DispatchRM) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, s)
}

func (p *recordingPublisher) snapshot() []readmodel.DispatchRM {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]readmodel.DispatchRM(nil), p.states...)
}

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDispatcher_NotifyReturnsBeforeDelivery(t *testing.T) {
	sender := newGatedSender()
	pub := &recordingPublisher{}
	d := NewDispatcher(sender, pub, clock.NewMockClock(fixedNow), discardLogger())

	d.Notify(context.Background(), sample(rental.StatusApproved, "ok"))

	st, ok := d.Lookup("req_1")
	require.True(t, ok)
	assert.Equal(t, readmodel.DispatchInFlight, st.State)
	assert.Equal(t, "approval", st.Kind)
	assert.Equal(t, "ana@example.com", st.Recipient)
	assert.Equal(t, fixedNow, st.StartedAt)
	assert.Equal(t, 1, d.InFlight())
	assert.Equal(t, 0, sender.count())

	close(sender.release)
	require.NoError(t, d.Shutdown(context.Background()))

	st, _ = d.Lookup("req_1")
	assert.Equal(t, readmodel.DispatchSent, st.State)
	require.NotNil(t, st.FinishedAt)
	assert.Equal(t, 1, sender.count())
	assert.Equal(t, 0, d.InFlight())

	states := pub.snapshot()
	require.Len(t, states, 2)
	assert.Equal(t, readmodel.DispatchInFlight, states[0].State)
	assert.Equal(t, readmodel.DispatchSent, states[1].State)
}

func TestDispatcher_IgnoresCallerCancellation(t *testing.T) {
	sender := newGatedSender()
	d := NewDispatcher(sender, nil, clock.NewMockClock(fixedNow), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	d.Notify(ctx, sample(rental.StatusDisapproved, "no"))
	cancel()

	close(sender.release)
	require.NoError(t, d.Shutdown(context.Background()))

	st, _ := d.Lookup("req_1")
	assert.Equal(t, readmodel.DispatchSent, st.State)
	assert.Equal(t, "disapproval", st.Kind)
}

func TestDispatcher_RecordsFailure(t *testing.T) {
	sender := newGatedSender()
	sender.err = errors.New("mailbox unavailable")
	close(sender.release)
	pub := &recordingPublisher{}
	d := NewDispatcher(sender, pub, clock.NewMockClock(fixedNow), discardLogger())

	d.Notify(context.Background(), sample(rental.StatusApproved, ""))
	require.NoError(t, d.Shutdown(context.Background()))

	st, _ := d.Lookup("req_1")
	assert.Equal(t, readmodel.DispatchFailed, st.State)
	assert.Equal(t, "mailbox unavailable", st.Error)
	assert.Equal(t, 1, sender.count(), "no retries")
	assert.Len(t, pub.snapshot(), 2)
}

func TestDispatcher_ManyInFlight(t *testing.T) {
	sender := newGatedSender()
	d := NewDispatcher(sender, nil, clock.NewMockClock(fixedNow), discardLogger())

	for _, id := range []string{"req_a", "req_b", "req_c"} {
		n := sample(rental.StatusApproved, "")
		n.RequestID = id
		d.Notify(context.Background(), n)
	}
	assert.Equal(t, 3, d.InFlight())

	close(sender.release)
	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, 3, sender.count())
}

func TestDispatcher_PendingIsNotSent(t *testing.T) {
	sender := newGatedSender()
	close(sender.release)
	d := NewDispatcher(sender, nil, clock.NewMockClock(fixedNow), discardLogger())

	d.Notify(context.Background(), sample(rental.StatusPending, ""))
	require.NoError(t, d.Shutdown(context.Background()))

	_, ok := d.Lookup("req_1")
	assert.False(t, ok)
	assert.Equal(t, 0, sender.count())
}

func TestDispatcher_ShutdownDeadlineCancelsSends(t *testing.T) {
	sender := newGatedSender() // never released
	d := NewDispatcher(sender, nil, clock.NewMockClock(fixedNow), discardLogger())
	d.Notify(context.Background(), sample(rental.StatusApproved, ""))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)

	assert.Eventually(t, func() bool {
		st, _ := d.Lookup("req_1")
		return st.State == readmodel.DispatchCancelled
	}, time.Second, 5*time.Millisecond)

	d.Notify(context.Background(), sample(rental.StatusApproved, ""))
	st, _ := d.Lookup("req_1")
	assert.Equal(t, readmodel.DispatchCancelled, st.State, "closed dispatcher accepts nothing")
}
