package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"ledger/internal/services"

	"github.com/go-chi/chi/v5"
)

func accountIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "account not found")
		return
	}
	var req services.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	var result services.TransactionResult
	err = h.retrier.Do(r.Context(), func(ctx context.Context) error {
		var applyErr error
		result, applyErr = h.ledger.Apply(ctx, accountID, req)
		return applyErr
	})
	if err != nil {
		respondTransactionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func respondTransactionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		respondError(w, http.StatusNotFound, "account not found")
	case errors.Is(err, services.ErrInvalidTransaction):
		respondError(w, http.StatusUnprocessableEntity, "invalid_transaction")
	case errors.Is(err, services.ErrLimitExceeded):
		respondError(w, http.StatusUnprocessableEntity, "limit_exceeded")
	case errors.Is(err, services.ErrContention):
		respondError(w, http.StatusServiceUnavailable, "contention")
	default:
		respondError(w, http.StatusInternalServerError, "storage_unavailable")
	}
}
