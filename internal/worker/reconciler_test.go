package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/merchline/merchline/internal/domain/model"
	facade "github.com/merchline/merchline/internal/test/facade"
)

func TestNewReconcilerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rec := NewReconciler(&facade.SettlementFacadeStub{}, time.Second, 0, 0, logger)
	if rec.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", rec.batchSize)
	}
	if rec.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", rec.workers)
	}
}

func TestReconcilerRewritesDriftedTransactions(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &facade.SettlementFacadeStub{
		Batches: [][]model.Transaction{{{ID: 31, ReferenceCode: "ref"}}},
	}
	rec := NewReconciler(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		done := len(facade.Reconciled) > 0
		facade.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for reconciliation")
		case <-time.After(10 * time.Millisecond):
		}
	}

	rec.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Reconciled[0] != 31 {
		t.Fatalf("unexpected reconciled id %d", facade.Reconciled[0])
	}
}

func TestReconcilerOutlivesStartContext(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &facade.SettlementFacadeStub{
		Batches: [][]model.Transaction{{{ID: 31, ReferenceCode: "ref"}}},
	}
	rec := NewReconciler(facade, 10*time.Millisecond, 1, 1, logger)

	// Startup hooks hand over a context that dies as soon as the start
	// phase returns; the pool must keep running regardless.
	startCtx, cancel := context.WithCancel(context.Background())
	rec.Start(startCtx)
	cancel()

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		done := len(facade.Reconciled) > 0
		facade.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for reconciliation after start context ended")
		case <-time.After(10 * time.Millisecond):
		}
	}
	rec.Stop()
}

func TestReconcilerKeepsPollingAfterErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &facade.SettlementFacadeStub{
		Batches: [][]model.Transaction{{{ID: 31}}, {{ID: 31}}},
		ReconcileFn: func(ctx context.Context, transactionID int64) error {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return errors.New("transient")
			}
			return nil
		},
	}

	rec := NewReconciler(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&attempts) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry")
		case <-time.After(10 * time.Millisecond):
		}
	}
	rec.Stop()
}
