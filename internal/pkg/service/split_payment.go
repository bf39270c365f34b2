package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/0x24CaptainParrot/splitpay-service/internal/logger"
	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
	"github.com/0x24CaptainParrot/splitpay-service/internal/pkg/repository"
	"github.com/0x24CaptainParrot/splitpay-service/internal/split"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CurrencyFormatter interface {
	Format(amount decimal.Decimal, formatted bool) string
}

type SplitPaymentService struct {
	catalog   repository.CatalogRepository
	quotes    repository.QuoteRepository
	sessions  repository.SessionRepository
	formatter CurrencyFormatter
	filter    split.Filter
}

func NewSplitPaymentService(repo *repository.Repository, formatter CurrencyFormatter, filter split.Filter) *SplitPaymentService {
	return &SplitPaymentService{
		catalog:   repo.Catalog,
		quotes:    repo.Quote,
		sessions:  repo.Session,
		formatter: formatter,
		filter:    filter,
	}
}

func (s *SplitPaymentService) StartSession(ctx context.Context, quoteID int64) (models.CheckoutSession, error) {
	if _, err := s.quotes.GetQuote(ctx, quoteID); err != nil {
		return models.CheckoutSession{}, err
	}

	session := models.CheckoutSession{
		ID:        uuid.NewString(),
		QuoteID:   quoteID,
		StartedAt: time.Now().UTC(),
	}

	if err := s.loadCatalog(ctx, &session.State); err != nil {
		return models.CheckoutSession{}, err
	}

	if err := s.sessions.Store(ctx, session); err != nil {
		return models.CheckoutSession{}, err
	}

	logger.Log.Info("checkout session started",
		zap.String("session", session.ID),
		zap.Int64("quote", quoteID),
		zap.Int("methods", len(session.State.Allocations)))
	return session, nil
}

func (s *SplitPaymentService) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *SplitPaymentService) loadCatalog(ctx context.Context, state *models.AllocationState) error {
	methods, err := s.catalog.ListPaymentMethods(ctx)
	if err != nil {
		return fmt.Errorf("failed to list payment methods: %w", err)
	}
	split.LoadCatalog(state, methods, s.filter)
	return nil
}

func (s *SplitPaymentService) Mount(ctx context.Context, sessionID string) (models.AllocationState, error) {
	return s.mutate(ctx, sessionID, func(state *models.AllocationState) error {
		return s.loadCatalog(ctx, state)
	})
}

func (s *SplitPaymentService) SetAmount(ctx context.Context, sessionID, code, amount string) (models.AllocationState, error) {
	return s.mutate(ctx, sessionID, func(state *models.AllocationState) error {
		return split.SetAmount(state, code, amount)
	})
}

func (s *SplitPaymentService) SetIgnoreOutstandingBalance(ctx context.Context, sessionID string, ignore bool) (models.AllocationState, error) {
	return s.mutate(ctx, sessionID, func(state *models.AllocationState) error {
		split.SetIgnoreOutstandingBalance(state, ignore)
		return nil
	})
}

// mutate stores the session only when fn succeeds.
func (s *SplitPaymentService) mutate(ctx context.Context, sessionID string, fn func(*models.AllocationState) error) (models.AllocationState, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return models.AllocationState{}, err
	}

	if err := fn(&session.State); err != nil {
		return models.AllocationState{}, err
	}

	if err := s.sessions.Store(ctx, session); err != nil {
		return models.AllocationState{}, err
	}
	return session.State, nil
}

// Save writes the split under split_payment_data on the quote payment. A failed
// quote save leaves the session unapplied.
func (s *SplitPaymentService) Save(ctx context.Context, sessionID string) ([]models.SplitPaymentEntry, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries := split.Save(&session.State)

	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode split payment data: %w", err)
	}

	quote, err := s.quotes.GetQuote(ctx, session.QuoteID)
	if err != nil {
		return nil, err
	}

	quote.Payment.SetAdditionalInformation(models.SplitPaymentDataKey, string(payload))
	if err := s.quotes.SavePayment(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.sessions.Store(ctx, session); err != nil {
		return nil, err
	}

	logger.Log.Info("split payment applied",
		zap.String("session", sessionID),
		zap.Int64("quote", session.QuoteID),
		zap.Int("entries", len(entries)))
	return entries, nil
}

func (s *SplitPaymentService) sessionWithQuote(ctx context.Context, sessionID string) (models.CheckoutSession, models.Quote, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return models.CheckoutSession{}, models.Quote{}, err
	}

	quote, err := s.quotes.GetQuote(ctx, session.QuoteID)
	if err != nil {
		return models.CheckoutSession{}, models.Quote{}, err
	}
	return session, quote, nil
}

func (s *SplitPaymentService) View(ctx context.Context, sessionID string) (models.SplitPaymentView, error) {
	session, quote, err := s.sessionWithQuote(ctx, sessionID)
	if err != nil {
		return models.SplitPaymentView{}, err
	}

	remaining := split.TotalRemaining(session.State, quote.GrandTotal)
	return models.SplitPaymentView{
		QuoteID:            quote.ID,
		State:              session.State,
		GrandTotal:         quote.GrandTotal.String(),
		Remaining:          s.formatter.Format(remaining, false),
		RemainingFormatted: s.formatter.Format(remaining, true),
	}, nil
}

func (s *SplitPaymentService) TotalRemaining(ctx context.Context, sessionID string, formatted bool) (string, error) {
	session, quote, err := s.sessionWithQuote(ctx, sessionID)
	if err != nil {
		return "", err
	}

	remaining := split.TotalRemaining(session.State, quote.GrandTotal)
	return s.formatter.Format(remaining, formatted), nil
}

func (s *SplitPaymentService) EvaluateCompletion(ctx context.Context, sessionID string) error {
	session, quote, err := s.sessionWithQuote(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := split.EvaluateCompletion(session.State, quote.GrandTotal); err != nil {
		logger.Log.Info("split payment incomplete",
			zap.String("session", sessionID),
			zap.Int64("quote", quote.ID),
			zap.String("reason", err.Error()))
		return err
	}
	return nil
}
