package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/0x24CaptainParrot/splitpay-service/internal/logger"
	"github.com/0x24CaptainParrot/splitpay-service/internal/middleware"
	"github.com/0x24CaptainParrot/splitpay-service/internal/pkg/repository"
	"github.com/0x24CaptainParrot/splitpay-service/internal/pkg/service"
	"github.com/0x24CaptainParrot/splitpay-service/internal/split"
	"github.com/go-chi/chi"
)

type Handler struct {
	services *service.Service
}

func NewHandler(services *service.Service) *Handler {
	return &Handler{services: services}
}

func (h *Handler) InitApiRoutes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(logger.LoggingReqResMiddleware(logger.Log))
	r.Use(middleware.CompressGzipMiddleware())

	r.Route("/api/checkout", func(r chi.Router) {
		r.Post("/sessions", h.StartSessionHandler)
		r.With(AuthenticateMiddleware(h.services.Authorization)).Delete("/sessions", h.EndSessionHandler)

		r.Route("/split-payment", func(r chi.Router) {
			r.Use(AuthenticateMiddleware(h.services.Authorization))
			r.Get("/", h.ViewHandler)
			r.Post("/mount", h.MountHandler)
			r.Put("/methods/{code}", h.SetAmountHandler)
			r.Put("/ignore-outstanding-balance", h.IgnoreOutstandingBalanceHandler)
			r.Post("/save", h.SaveHandler)
			r.Get("/remaining", h.TotalRemainingHandler)
			r.Post("/evaluate", h.EvaluateCompletionHandler)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Sugar().Errorf("failed to encode response: %v", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, split.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, split.ErrUnknownMethod), errors.Is(err, repository.ErrQuoteNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrSessionNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.Sugar().Errorf("request failed: %v", err)
	}
	http.Error(w, err.Error(), status)
}
