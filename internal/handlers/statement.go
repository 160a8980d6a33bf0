package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ledger/internal/services"
	"ledger/internal/websocket"
)

func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "account not found")
		return
	}
	statement, err := h.statements.Statement(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			respondError(w, http.StatusNotFound, "account not found")
		case errors.Is(err, services.ErrContention):
			respondError(w, http.StatusServiceUnavailable, "contention")
		default:
			respondError(w, http.StatusInternalServerError, "storage_unavailable")
		}
		return
	}
	respondJSON(w, http.StatusOK, statement)
}

func (h *Handler) WSBalances(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(r.URL.Query().Get("account_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "account_id is required")
		return
	}
	websocket.ServeWS(w, r, h.hub, accountID)
}
