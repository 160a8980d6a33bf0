package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ledger/internal/cache"
	"ledger/internal/db"
	"ledger/internal/money"
	"ledger/internal/store"
	"ledger/internal/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

const (
	KindCredit = "credit"
	KindDebit  = "debit"
)

type AccountStore interface {
	GetLimit(ctx context.Context, accountID int64) (int64, error)
	GetForUpdate(ctx context.Context, tx store.Getter, accountID int64) (store.Account, error)
	UpdateBalance(ctx context.Context, tx store.Execer, accountID int64, balance int64) error
}

type TransactionStore interface {
	Insert(ctx context.Context, tx store.Execer, input store.TransactionInput) error
}

type BalanceHub interface {
	BroadcastBalance(accountID int64, update websocket.BalanceUpdate)
}

type TransactionRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=credit debit"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,desclen"`
}

type TransactionResult struct {
	CreditLimit int64 `json:"credit_limit"`
	Balance     int64 `json:"balance"`
}

// LedgerService owns all balance mutation. Each Apply runs as one atomic unit
// against storage: the account row is locked, the floor is checked once, and
// exactly one transaction row plus one balance overwrite are written, or
// nothing at all.
type LedgerService struct {
	txRunner     db.TxRunner
	accounts     AccountStore
	transactions TransactionStore
	limits       cache.LimitCache
	hub          BalanceHub
	validate     *validator.Validate
}

func NewLedgerService(txRunner db.TxRunner, accounts AccountStore, transactions TransactionStore, limits cache.LimitCache, hub BalanceHub) *LedgerService {
	validate := validator.New()
	_ = validate.RegisterValidation("desclen", func(fl validator.FieldLevel) bool {
		n := effectiveLength(fl.Field().String())
		return n >= 1 && n <= 10
	})
	return &LedgerService{
		txRunner:     txRunner,
		accounts:     accounts,
		transactions: transactions,
		limits:       limits,
		hub:          hub,
		validate:     validate,
	}
}

func (s *LedgerService) Apply(ctx context.Context, accountID int64, req TransactionRequest) (TransactionResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return TransactionResult{}, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	// Fast not-found path and cache warm-up; only the immutable limit is cached.
	if _, err := s.creditLimit(ctx, accountID); err != nil {
		return TransactionResult{}, err
	}

	var result TransactionResult
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		account, err := s.accounts.GetForUpdate(ctx, tx, accountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}
		newBalance := account.Balance
		if req.Kind == KindCredit {
			newBalance += req.Amount
		} else {
			newBalance -= req.Amount
		}
		// Floor check on the resulting balance. With positive amounts a credit
		// can never trip it, so in practice this fires only for debits.
		if newBalance < -account.CreditLimit {
			return ErrLimitExceeded
		}
		if err := s.transactions.Insert(ctx, tx, store.TransactionInput{
			AccountID:   accountID,
			Kind:        req.Kind,
			Amount:      req.Amount,
			Description: req.Description,
		}); err != nil {
			return err
		}
		if err := s.accounts.UpdateBalance(ctx, tx, accountID, newBalance); err != nil {
			return err
		}
		result = TransactionResult{CreditLimit: account.CreditLimit, Balance: newBalance}
		return nil
	})
	if err != nil {
		return TransactionResult{}, classifyStorage(err)
	}
	if s.hub != nil {
		s.hub.BroadcastBalance(accountID, websocket.BalanceUpdate{
			AccountID:   accountID,
			Balance:     money.FormatMinor(result.Balance),
			CreditLimit: money.FormatMinor(result.CreditLimit),
		})
	}
	return result, nil
}

func (s *LedgerService) creditLimit(ctx context.Context, accountID int64) (int64, error) {
	if limit, ok := s.limits.Get(ctx, accountID); ok {
		return limit, nil
	}
	limit, err := s.accounts.GetLimit(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrAccountNotFound
		}
		return 0, classifyStorage(err)
	}
	s.limits.Put(ctx, accountID, limit)
	return limit, nil
}

// effectiveLength counts ASCII alphanumerics, mirroring how descriptions are
// measured: punctuation and spacing do not count against the 10-character cap.
func effectiveLength(s string) int {
	n := 0
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}
	return n
}
