package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestShutdownRunsHooksInReverse(t *testing.T) {
	m := New(time.Second, zaptest.NewLogger(t))

	var order []string
	m.Register("storage", func(context.Context) error {
		order = append(order, "storage")
		return nil
	})
	m.Register("flush", func(context.Context) error {
		order = append(order, "flush")
		return errors.New("storage offline")
	})
	m.Register("http", func(context.Context) error {
		order = append(order, "http")
		return nil
	})
	m.Register("ignored", nil)

	err := m.Shutdown(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage offline")
	assert.Equal(t, []string{"http", "flush", "storage"}, order)
}

func TestShutdownAppliesTimeout(t *testing.T) {
	m := New(50*time.Millisecond, nil)
	m.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := m.Shutdown(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHooksRunOnce(t *testing.T) {
	m := New(time.Second, nil)
	calls := 0
	m.Register("store", func(context.Context) error {
		calls++
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, m.Wait(ctx))
	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, 1, calls)
}
