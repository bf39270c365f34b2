package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
	"github.com/0x24CaptainParrot/splitpay-service/internal/split"
	"github.com/go-chi/chi"
)

func (h *Handler) ViewHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r)
	if !ok {
		http.Error(w, "session id is missing in context", http.StatusUnauthorized)
		return
	}

	view, err := h.services.SplitPayment.View(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) MountHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r)
	if !ok {
		http.Error(w, "session id is missing in context", http.StatusUnauthorized)
		return
	}

	state, err := h.services.SplitPayment.Mount(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) SetAmountHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r)
	if !ok {
		http.Error(w, "session id is missing in context", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content-type", http.StatusUnsupportedMediaType)
		return
	}

	var req models.SetAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateStruct(req); err != nil {
		http.Error(w, split.ErrInvalidAmount.Error(), http.StatusBadRequest)
		return
	}

	code := chi.URLParam(r, "code")
	state, err := h.services.SplitPayment.SetAmount(r.Context(), sessionID, code, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) IgnoreOutstandingBalanceHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r)
	if !ok {
		http.Error(w, "session id is missing in context", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content-type", http.StatusUnsupportedMediaType)
		return
	}

	var req models.IgnoreBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.services.SplitPayment.SetIgnoreOutstandingBalance(r.Context(), sessionID, req.Ignore)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r)
	if !ok {
		http.Error(w, "session id is missing in context", http.StatusUnauthorized)
		return
	}

	entries, err := h.services.SplitPayment.Save(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) TotalRemainingHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r)
	if !ok {
		http.Error(w, "session id is missing in context", http.StatusUnauthorized)
		return
	}

	formatted := false
	if raw := r.URL.Query().Get("formatted"); raw != "" {
		var err error
		if formatted, err = strconv.ParseBool(raw); err != nil {
			http.Error(w, "invalid formatted flag", http.StatusBadRequest)
			return
		}
	}

	remaining, err := h.services.SplitPayment.TotalRemaining(r.Context(), sessionID, formatted)
	if err != nil {
		writeError(w, err)
		return
	}

	if formatted {
		writeJSON(w, http.StatusOK, map[string]any{"remaining": remaining})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"remaining": json.Number(remaining)})
}

func (h *Handler) EvaluateCompletionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r)
	if !ok {
		http.Error(w, "session id is missing in context", http.StatusUnauthorized)
		return
	}

	err := h.services.SplitPayment.EvaluateCompletion(r.Context(), sessionID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, models.EvaluationResponse{Success: true})
	case errors.Is(err, split.ErrChangesNotApplied),
		errors.Is(err, split.ErrNoMethodSelected),
		errors.Is(err, split.ErrInsufficientTotal):
		writeJSON(w, http.StatusUnprocessableEntity, models.EvaluationResponse{Message: err.Error()})
	default:
		writeError(w, err)
	}
}
