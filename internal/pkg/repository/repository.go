package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=repository.go -destination=../../mocks/repository.go -package=mocks

type CatalogRepository interface {
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

type QuoteRepository interface {
	GetQuote(ctx context.Context, quoteID int64) (models.Quote, error)
	SavePayment(ctx context.Context, quote models.Quote) error
}

type SessionRepository interface {
	Load(ctx context.Context, sessionID string) (models.CheckoutSession, error)
	Store(ctx context.Context, session models.CheckoutSession) error
	Delete(ctx context.Context, sessionID string) error
}

type Repository struct {
	Catalog CatalogRepository
	Quote   QuoteRepository
	Session SessionRepository
}

type Options struct {
	DB            *sql.DB
	Pool          *pgxpool.Pool
	Redis         *redis.Client
	SessionTTL    time.Duration
	NotifyChannel string
}

func NewRepository(opts Options) *Repository {
	return &Repository{
		Catalog: NewCatalogPostgres(opts.DB),
		Quote:   NewQuotePool(opts.Pool, opts.NotifyChannel),
		Session: NewSessionRedis(opts.Redis, opts.SessionTTL),
	}
}
