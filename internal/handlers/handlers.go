package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"ledger/internal/config"
	"ledger/internal/services"
	"ledger/internal/websocket"
)

type LedgerEngine interface {
	Apply(ctx context.Context, accountID int64, req services.TransactionRequest) (services.TransactionResult, error)
}

type StatementReader interface {
	Statement(ctx context.Context, accountID int64) (services.Statement, error)
}

type Handler struct {
	cfg        config.Config
	ledger     LedgerEngine
	statements StatementReader
	retrier    services.Retrier
	hub        *websocket.Hub
}

func New(cfg config.Config, ledger LedgerEngine, statements StatementReader, retrier services.Retrier, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:        cfg,
		ledger:     ledger,
		statements: statements,
		retrier:    retrier,
		hub:        hub,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
