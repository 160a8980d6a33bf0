package handlers

import (
	"context"
	"time"

	"ledger/internal/config"
	"ledger/internal/services"
	"ledger/internal/websocket"
)

type stubLedger struct {
	applyFn func(ctx context.Context, accountID int64, req services.TransactionRequest) (services.TransactionResult, error)
}

func (s stubLedger) Apply(ctx context.Context, accountID int64, req services.TransactionRequest) (services.TransactionResult, error) {
	if s.applyFn == nil {
		return services.TransactionResult{}, nil
	}
	return s.applyFn(ctx, accountID, req)
}

type stubStatements struct {
	statementFn func(ctx context.Context, accountID int64) (services.Statement, error)
}

func (s stubStatements) Statement(ctx context.Context, accountID int64) (services.Statement, error) {
	if s.statementFn == nil {
		return services.Statement{}, nil
	}
	return s.statementFn(ctx, accountID)
}

func newTestHandler(ledger LedgerEngine, statements StatementReader) *Handler {
	cfg := config.Config{AllowedOrigins: "*"}
	return New(cfg, ledger, statements, services.NewRetrier(2, time.Millisecond), websocket.NewHub())
}
