package services

import (
	"context"
	"time"

	"ledger/internal/store"
)

// statementLimit is the bounded history window: at most this many transactions
// per statement, and anything older is eligible for pruning.
const statementLimit = 10

type StatementLister interface {
	ListStatement(ctx context.Context, accountID int64, limit int) ([]store.StatementRow, error)
}

type PruneScheduler interface {
	Schedule(accountID, cutoffSeq int64)
}

type BalanceSnapshot struct {
	Total        int64     `json:"total"`
	Limit        int64     `json:"limit"`
	SnapshotTime time.Time `json:"snapshot_time"`
}

type StatementEntry struct {
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Kind        string    `json:"kind"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Statement struct {
	Balance            BalanceSnapshot  `json:"balance"`
	RecentTransactions []StatementEntry `json:"recent_transactions"`
}

type StatementService struct {
	transactions StatementLister
	pruner       PruneScheduler
}

func NewStatementService(transactions StatementLister, pruner PruneScheduler) *StatementService {
	return &StatementService{transactions: transactions, pruner: pruner}
}

// Statement returns the current balance and up to the 10 most recent
// transactions, newest first, read in one joined query so both belong to the
// same instant. Seeing an 11th row schedules pruning at that row's sequence.
func (s *StatementService) Statement(ctx context.Context, accountID int64) (Statement, error) {
	rows, err := s.transactions.ListStatement(ctx, accountID, statementLimit+1)
	if err != nil {
		return Statement{}, classifyStorage(err)
	}
	if len(rows) == 0 {
		return Statement{}, ErrAccountNotFound
	}

	entries := make([]StatementEntry, 0, statementLimit)
	for i, row := range rows {
		if row.Seq == nil {
			// Account exists but has no transactions.
			continue
		}
		if i == statementLimit {
			if s.pruner != nil {
				s.pruner.Schedule(accountID, *row.Seq)
			}
			break
		}
		entries = append(entries, StatementEntry{
			Description: *row.Description,
			Amount:      *row.Amount,
			Kind:        *row.Kind,
			OccurredAt:  *row.OccurredAt,
		})
	}

	return Statement{
		Balance: BalanceSnapshot{
			Total:        rows[0].Balance,
			Limit:        rows[0].CreditLimit,
			SnapshotTime: time.Now().UTC(),
		},
		RecentTransactions: entries,
	}, nil
}
