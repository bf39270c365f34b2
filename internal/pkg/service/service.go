package service

import (
	"context"

	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service.go -package=mocks

type Authorization interface {
	GenerateToken(ctx context.Context, sessionID string) (string, error)
	ParseToken(ctx context.Context, tokenGot string) (string, error)
}

type SplitPayment interface {
	StartSession(ctx context.Context, quoteID int64) (models.CheckoutSession, error)
	EndSession(ctx context.Context, sessionID string) error
	Mount(ctx context.Context, sessionID string) (models.AllocationState, error)
	View(ctx context.Context, sessionID string) (models.SplitPaymentView, error)
	SetAmount(ctx context.Context, sessionID, code, amount string) (models.AllocationState, error)
	SetIgnoreOutstandingBalance(ctx context.Context, sessionID string, ignore bool) (models.AllocationState, error)
	Save(ctx context.Context, sessionID string) ([]models.SplitPaymentEntry, error)
	TotalRemaining(ctx context.Context, sessionID string, formatted bool) (string, error)
	EvaluateCompletion(ctx context.Context, sessionID string) error
}

type Service struct {
	Authorization Authorization
	SplitPayment  SplitPayment
}

type Dependencies struct {
	Authorization Authorization
	SplitPayment  SplitPayment
}

func NewService(deps Dependencies) *Service {
	return &Service{
		Authorization: deps.Authorization,
		SplitPayment:  deps.SplitPayment,
	}
}
