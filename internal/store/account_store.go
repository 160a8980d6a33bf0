package store

import "context"

type AccountStore struct {
	db DB
}

type Account struct {
	ID          int64 `db:"id"`
	CreditLimit int64 `db:"credit_limit"`
	Balance     int64 `db:"balance"`
}

func NewAccountStore(db DB) *AccountStore {
	return &AccountStore{db: db}
}

// GetLimit reads only the immutable credit limit. Callers may cache the result;
// the mutable balance is deliberately not part of this query.
func (s *AccountStore) GetLimit(ctx context.Context, accountID int64) (int64, error) {
	var limit int64
	err := s.db.GetContext(ctx, &limit, `
		SELECT credit_limit
		FROM accounts
		WHERE id = $1
	`, accountID)
	return limit, err
}

func (s *AccountStore) GetForUpdate(ctx context.Context, tx Getter, accountID int64) (Account, error) {
	var row Account
	err := tx.GetContext(ctx, &row, `
		SELECT id, credit_limit, balance
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`, accountID)
	if err != nil {
		return Account{}, err
	}
	return row, nil
}

func (s *AccountStore) UpdateBalance(ctx context.Context, tx Execer, accountID int64, balance int64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE accounts
		SET balance = $1
		WHERE id = $2
	`, balance, accountID)
	return err
}
