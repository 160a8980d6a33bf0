package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"
)

func TestTransactionStoreInsert(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(stubDB{})
	tx := stubTx{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO transactions") {
				t.Fatalf("unexpected query: %s", query)
			}
			if args[0] != int64(3) || args[1] != "debit" || args[2] != int64(250) || args[3] != "groceries" {
				t.Fatalf("unexpected args: %#v", args)
			}
			return stubResult{rows: 1}, nil
		},
	}
	err := store.Insert(ctx, tx, TransactionInput{
		AccountID:   3,
		Kind:        "debit",
		Amount:      250,
		Description: "groceries",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransactionStoreListStatement(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	seq := int64(12)
	kind := "credit"
	amount := int64(100)
	description := "salary"
	store := NewTransactionStore(stubDB{
		selectFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "LEFT JOIN transactions") {
				t.Fatalf("expected joined query: %s", query)
			}
			if args[0] != int64(5) || args[1] != 11 {
				t.Fatalf("unexpected args: %#v", args)
			}
			rows := dest.(*[]StatementRow)
			*rows = []StatementRow{
				{Balance: 300, CreditLimit: 1000, Seq: &seq, Kind: &kind, Amount: &amount, Description: &description, OccurredAt: &now},
			}
			return nil
		},
	})
	rows, err := store.ListStatement(ctx, 5, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Balance != 300 || *rows[0].Seq != 12 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestTransactionStoreDeleteThrough(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(stubDB{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "DELETE FROM transactions") {
				t.Fatalf("unexpected query: %s", query)
			}
			if !strings.Contains(query, "seq <=") {
				t.Fatalf("expected cutoff condition: %s", query)
			}
			if args[0] != int64(5) || args[1] != int64(40) {
				t.Fatalf("unexpected args: %#v", args)
			}
			return stubResult{rows: 6}, nil
		},
	})
	deleted, err := store.DeleteThrough(ctx, 5, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 6 {
		t.Fatalf("unexpected delete count: %d", deleted)
	}
}
