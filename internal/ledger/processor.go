package ledger

import (
	"context"
	"log"
	"sync"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/shopspring/decimal"
)

// ProfileStore is the persistence surface the processor needs.
type ProfileStore interface {
	Load(ctx context.Context, identity string) (models.UserProfile, error)
	Save(ctx context.Context, profile models.UserProfile) error
}

// Trade describes one trade to apply against a profile.
type Trade struct {
	Identity string
	Symbol   string
	Side     string
	Quantity int
	Price    decimal.Decimal
}

// Result represents the outcome of a processed trade.
type Result struct {
	Err         error
	Profile     models.UserProfile
	Transaction models.Transaction
}

type job struct {
	ctx      context.Context
	trade    Trade
	resultCh chan Result // channel to send the result back
}

// Processor applies trades through a worker pool with per-identity locking,
// guaranteeing at most one trade in flight per profile. A trade is reported
// successful only after the updated profile has been handed to the store.
type Processor struct {
	workers int
	queue   chan job
	stopCh  chan struct{}
	wg      sync.WaitGroup
	locks   *identityLocker
	store   ProfileStore
}

// NewProcessor creates a trade processor backed by the given store.
func NewProcessor(store ProfileStore, workers int) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		workers: workers,
		queue:   make(chan job, 100), // buffer of 100 trades
		stopCh:  make(chan struct{}),
		locks:   newIdentityLocker(),
		store:   store,
	}
}

// Start starts the worker pool.
func (p *Processor) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	log.Printf("started %d trade workers", p.workers)
}

// Stop gracefully stops all workers.
func (p *Processor) Stop() {
	close(p.stopCh)
	p.wg.Wait()
	log.Println("trade processor stopped")
}

func (p *Processor) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopCh:
			return
		case j := <-p.queue:
			j.resultCh <- p.process(j.ctx, j.trade)
		}
	}
}

// process runs one trade under the identity's lock: load the current
// profile, execute against a copy, persist, reply. Rejections leave the
// stored profile untouched.
func (p *Processor) process(ctx context.Context, t Trade) Result {
	p.locks.Lock(t.Identity)
	defer p.locks.Unlock(t.Identity)

	profile, err := p.store.Load(ctx, t.Identity)
	if err != nil {
		return Result{Err: err}
	}

	updated, err := ExecuteTrade(profile, t.Symbol, t.Price, t.Quantity, t.Side)
	if err != nil {
		return Result{Err: err}
	}

	if err := p.store.Save(ctx, updated); err != nil {
		return Result{Err: err}
	}

	return Result{Profile: updated, Transaction: updated.Transactions[0]}
}

// Submit queues a trade and waits for its result.
func (p *Processor) Submit(ctx context.Context, t Trade) Result {
	resultCh := make(chan Result, 1)

	select {
	case p.queue <- job{ctx: ctx, trade: t, resultCh: resultCh}:
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}

	select {
	case res := <-resultCh:
		return res
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}
