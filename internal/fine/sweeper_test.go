package fine

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circulation/internal/platform/logging"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) RefreshAll(ctx context.Context) (int, error) {
	c.calls.Add(1)
	return 3, c.err
}

func TestSweeper_DisabledReturnsImmediately(t *testing.T) {
	r := &countingRefresher{}
	s := NewSweeper(r, 0, logging.Discard())

	require.NoError(t, s.Run(context.Background()))
	assert.Zero(t, r.calls.Load())
}

func TestSweeper_TicksUntilCancelled(t *testing.T) {
	r := &countingRefresher{}
	s := NewSweeper(r, 5*time.Millisecond, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_SweepLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	s := NewSweeper(&countingRefresher{err: errors.New("db down")}, time.Minute, logging.NewWithWriter(&buf, "text", "info"))

	s.Sweep(context.Background())

	assert.Contains(t, buf.String(), "fine sweep failed")
	assert.Contains(t, buf.String(), "db down")
}
