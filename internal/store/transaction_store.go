package store

import (
	"context"
	"time"
)

type TransactionStore struct {
	db DB
}

type TransactionInput struct {
	AccountID   int64
	Kind        string
	Amount      int64
	Description string
}

// StatementRow is one row of the joined statement query. The transaction columns
// are nullable because an account with no transactions still yields one row
// carrying its balance and limit.
type StatementRow struct {
	Balance     int64      `db:"balance"`
	CreditLimit int64      `db:"credit_limit"`
	Seq         *int64     `db:"seq"`
	Kind        *string    `db:"kind"`
	Amount      *int64     `db:"amount"`
	Description *string    `db:"description"`
	OccurredAt  *time.Time `db:"occurred_at"`
}

func NewTransactionStore(db DB) *TransactionStore {
	return &TransactionStore{db: db}
}

func (s *TransactionStore) Insert(ctx context.Context, tx Execer, input TransactionInput) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (account_id, kind, amount, description)
		VALUES ($1, $2, $3, $4)
	`, input.AccountID, input.Kind, input.Amount, input.Description)
	return err
}

// ListStatement returns the account joined with its newest transactions, newest
// first, in a single query so balance and history belong to the same instant.
func (s *TransactionStore) ListStatement(ctx context.Context, accountID int64, limit int) ([]StatementRow, error) {
	var rows []StatementRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT a.balance, a.credit_limit, t.seq, t.kind, t.amount, t.description, t.occurred_at
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.id
		WHERE a.id = $1
		ORDER BY t.seq DESC NULLS LAST
		LIMIT $2
	`, accountID, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TransactionStore) DeleteThrough(ctx context.Context, accountID, seq int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM transactions
		WHERE account_id = $1 AND seq <= $2
	`, accountID, seq)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
