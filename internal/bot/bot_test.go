package bot_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/edgard/checklistbot/internal/bot"
	"github.com/edgard/checklistbot/internal/checklist"
	"github.com/edgard/checklistbot/internal/testutil"
)

type blockingListener struct {
	started atomic.Bool
}

func (l *blockingListener) Start(ctx context.Context) {
	l.started.Store(true)
	<-ctx.Done()
}

type returningListener struct{}

func (returningListener) Start(context.Context) {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBot_RunCreatesSheetsAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeStore()
	selector := checklist.NewSelector(store, "Tasks", nil)
	recorder := checklist.NewRecorder(store, "Log", nil)
	listener := &blockingListener{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bot.NewBot(discardLogger(), listener, selector, recorder).Run(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for !listener.started.Load() {
		if time.Now().After(deadline) {
			t.Fatal("listener was not started")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if diff := cmp.Diff([][]string{checklist.TaskHeader}, store.Rows("Tasks")); diff != "" {
		t.Errorf("task sheet mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{checklist.LogHeader}, store.Rows("Log")); diff != "" {
		t.Errorf("log sheet mismatch (-want +got):\n%s", diff)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil on cancellation", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestBot_RunEnsureFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeStore()
	store.EnsureErr = errors.New("permission denied")
	recorder := checklist.NewRecorder(store, "Log", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := bot.NewBot(discardLogger(), &blockingListener{}, recorder).Run(ctx); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
}

func TestBot_RunListenerStopsUnexpectedly(t *testing.T) {
	t.Parallel()

	recorder := checklist.NewRecorder(testutil.NewFakeStore(), "Log", nil)

	if err := bot.NewBot(discardLogger(), returningListener{}, recorder).Run(context.Background()); err == nil {
		t.Error("Run() error = nil, want error when listener stops on its own")
	}
}
