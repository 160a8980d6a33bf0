package services

import (
	"context"
	"log"
	"sync"
	"time"
)

type TransactionDeleter interface {
	DeleteThrough(ctx context.Context, accountID, seq int64) (int64, error)
}

// Pruner deletes transactions that fell out of the statement window. Requests
// for the same account coalesce: a new cutoff cancels and replaces an unfired
// one, so at most one prune job is pending per account. Pruning is best-effort;
// failures are logged and never retried, and the read path never waits on it.
type Pruner struct {
	deleter TransactionDeleter
	delay   time.Duration

	mu      sync.Mutex
	pending map[int64]*pruneJob
	closed  bool
}

// pruneJob identifies one scheduled prune. fire only removes the pending entry
// when it still holds this job: a stopped timer whose callback already started
// must not unregister the job that replaced it.
type pruneJob struct {
	cutoffSeq int64
	timer     *time.Timer
}

func NewPruner(deleter TransactionDeleter, delay time.Duration) *Pruner {
	return &Pruner{
		deleter: deleter,
		delay:   delay,
		pending: make(map[int64]*pruneJob),
	}
}

func (p *Pruner) Schedule(accountID, cutoffSeq int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if job, ok := p.pending[accountID]; ok {
		job.timer.Stop()
	}
	job := &pruneJob{cutoffSeq: cutoffSeq}
	job.timer = time.AfterFunc(p.delay, func() {
		p.fire(accountID, job)
	})
	p.pending[accountID] = job
}

func (p *Pruner) fire(accountID int64, job *pruneJob) {
	cutoffSeq := job.cutoffSeq
	p.mu.Lock()
	if p.pending[accountID] == job {
		delete(p.pending, accountID)
	}
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	deleted, err := p.deleter.DeleteThrough(ctx, accountID, cutoffSeq)
	if err != nil {
		log.Printf("prune failed for account %d at seq %d: %v", accountID, cutoffSeq, err)
		return
	}
	if deleted > 0 {
		log.Printf("pruned %d transactions for account %d through seq %d", deleted, accountID, cutoffSeq)
	}
}

// Close cancels all pending prune jobs and rejects new ones.
func (p *Pruner) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	for accountID, job := range p.pending {
		job.timer.Stop()
		delete(p.pending, accountID)
	}
}
