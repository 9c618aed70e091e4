package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/merchline/merchline/internal/domain/model"
)

// SettlementFacade exposes the subset of application functionality required
// by the reconciler.
type SettlementFacade interface {
	DriftedTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
	ReconcileTransaction(ctx context.Context, transactionID int64) error
}

// Reconciler polls for transactions whose cached amount_paid disagrees with
// the sum of their payments and rewrites them concurrently. The rewrite is
// idempotent, so a transaction picked up twice settles to the same state.
type Reconciler struct {
	facade       SettlementFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Transaction
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReconciler constructs the reconciliation worker pool.
func NewReconciler(facade SettlementFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *Reconciler {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Reconciler{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Transaction, batchSize*workers),
	}
}

// Start launches background reconciliation. The run context is detached from
// the caller's: startup hooks cancel their context once the start phase ends,
// while the pool must keep polling until Stop.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reconciler) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *Reconciler) fetchAndDispatch(ctx context.Context) {
	drifted, err := r.facade.DriftedTransactions(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("fetch drifted transactions failed", slog.String("error", err.Error()))
		return
	}
	for _, trans := range drifted {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- trans:
		}
	}
}

func (r *Reconciler) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case trans, ok := <-r.jobs:
			if !ok {
				return
			}
			r.reconcile(ctx, trans)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context, trans model.Transaction) {
	if err := r.facade.ReconcileTransaction(ctx, trans.ID); err != nil {
		r.logger.Error("reconcile transaction failed",
			slog.Int64("transaction_id", trans.ID),
			slog.String("error", err.Error()))
		return
	}
	r.logger.Info("transaction reconciled",
		slog.Int64("transaction_id", trans.ID),
		slog.String("reference_code", trans.ReferenceCode))
}
