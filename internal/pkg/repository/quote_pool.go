package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/0x24CaptainParrot/splitpay-service/internal/logger"
	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrQuoteNotFound = errors.New("quote was not found")

type QuotePool struct {
	pool    *pgxpool.Pool
	channel string
}

// NewQuotePool notifies channel with the quote id after every saved payment.
// An empty channel disables notifications.
func NewQuotePool(pool *pgxpool.Pool, channel string) *QuotePool {
	return &QuotePool{pool: pool, channel: channel}
}

const getQuote = `
	SELECT q.id, q.grand_total::text, q.currency_code, q.updated_at,
		COALESCE(p.method, ''),
		COALESCE(p.additional_information, '{}'::jsonb)::text
	FROM quotes q
	LEFT JOIN quote_payments p ON p.quote_id = q.id
	WHERE q.id = $1`

func (r *QuotePool) GetQuote(ctx context.Context, quoteID int64) (models.Quote, error) {
	var (
		quote      models.Quote
		grandTotal string
		info       string
	)

	err := r.pool.QueryRow(ctx, getQuote, quoteID).Scan(
		&quote.ID, &grandTotal, &quote.CurrencyCode, &quote.UpdatedAt,
		&quote.Payment.Method, &info)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Quote{}, ErrQuoteNotFound
		}
		return models.Quote{}, fmt.Errorf("failed to get quote: %w", err)
	}

	if quote.GrandTotal, err = decimal.NewFromString(grandTotal); err != nil {
		return models.Quote{}, fmt.Errorf("failed to parse grand total %q: %w", grandTotal, err)
	}

	if err := json.Unmarshal([]byte(info), &quote.Payment.AdditionalInformation); err != nil {
		return models.Quote{}, fmt.Errorf("failed to decode payment information: %w", err)
	}

	return quote, nil
}

const (
	upsertQuotePayment = `
		INSERT INTO quote_payments (quote_id, method, additional_information, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW())
		ON CONFLICT (quote_id) DO UPDATE
		SET method = EXCLUDED.method,
			additional_information = EXCLUDED.additional_information,
			updated_at = NOW()`

	touchQuote = `UPDATE quotes SET updated_at = NOW() WHERE id = $1`
)

// SavePayment stores the quote's payment record and touches the quote in one tx.
// Driver errors are returned as they come so callers see the store's own error.
func (r *QuotePool) SavePayment(ctx context.Context, quote models.Quote) error {
	info, err := json.Marshal(quote.Payment.AdditionalInformation)
	if err != nil {
		return fmt.Errorf("failed to encode payment information: %w", err)
	}
	if quote.Payment.AdditionalInformation == nil {
		info = []byte(`{}`)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		logger.Log.Sugar().Errorf("failed to begin transaction for quote %d: %v", quote.ID, err)
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, upsertQuotePayment, quote.ID, quote.Payment.Method, string(info)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return ErrQuoteNotFound
		}
		logger.Log.Sugar().Errorf("failed to save payment for quote %d: %v", quote.ID, err)
		return err
	}

	tag, err := tx.Exec(ctx, touchQuote, quote.ID)
	if err != nil {
		logger.Log.Sugar().Errorf("failed to update quote %d: %v", quote.ID, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuoteNotFound
	}

	if r.channel != "" {
		if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, r.channel, strconv.FormatInt(quote.ID, 10)); err != nil {
			logger.Log.Sugar().Errorf("failed to notify %s for quote %d: %v", r.channel, quote.ID, err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Log.Sugar().Errorf("failed to commit payment for quote %d: %v", quote.ID, err)
		return err
	}

	logger.Log.Sugar().Infof("payment information saved for quote %d", quote.ID)
	return nil
}
