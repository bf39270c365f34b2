package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/0x24CaptainParrot/splitpay-service/internal/logger"
	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
)

func (h *Handler) StartSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content-type", http.StatusUnsupportedMediaType)
		return
	}

	var req models.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateStruct(req); err != nil {
		http.Error(w, "invalid quote id", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	session, err := h.services.SplitPayment.StartSession(ctx, req.QuoteID)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.services.Authorization.GenerateToken(ctx, session.ID)
	if err != nil {
		logger.Log.Sugar().Errorf("failed to generate token for session %s: %v", session.ID, err)
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"token":   token,
		"session": session,
	})
}

func (h *Handler) EndSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r)
	if !ok {
		http.Error(w, "session id is missing in context", http.StatusUnauthorized)
		return
	}

	if err := h.services.SplitPayment.EndSession(r.Context(), sessionID); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   authCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	w.WriteHeader(http.StatusNoContent)
}
