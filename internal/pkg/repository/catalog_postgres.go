package repository

import (
	"context"
	"database/sql"

	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
)

type CatalogPostgres struct {
	db *sql.DB
}

func NewCatalogPostgres(db *sql.DB) *CatalogPostgres {
	return &CatalogPostgres{db: db}
}

const listPaymentMethods = `SELECT code, title FROM payment_methods 
					WHERE active ORDER BY sort_order ASC, code ASC`

func (cp *CatalogPostgres) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	rows, err := cp.db.QueryContext(ctx, listPaymentMethods)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := make([]models.PaymentMethod, 0)
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(&m.Code, &m.Title); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return methods, nil
}
