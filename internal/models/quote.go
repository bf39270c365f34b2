package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const SplitPaymentDataKey = "split_payment_data"

type Quote struct {
	ID           int64           `json:"id"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	CurrencyCode string          `json:"currency_code"`
	Payment      QuotePayment    `json:"payment"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type QuotePayment struct {
	Method                string            `json:"method,omitempty"`
	AdditionalInformation map[string]string `json:"additional_information,omitempty"`
}

func (p *QuotePayment) SetAdditionalInformation(key, value string) {
	if p.AdditionalInformation == nil {
		p.AdditionalInformation = make(map[string]string)
	}
	p.AdditionalInformation[key] = value
}
