package models

import "time"

type CheckoutSession struct {
	ID        string          `json:"id"`
	QuoteID   int64           `json:"quote_id"`
	State     AllocationState `json:"state"`
	StartedAt time.Time       `json:"started_at"`
}

type StartSessionRequest struct {
	QuoteID int64 `json:"quote_id" validate:"required,gt=0"`
}

type SetAmountRequest struct {
	Amount string `json:"amount" validate:"omitempty,nonnegative_amount"`
}

type IgnoreBalanceRequest struct {
	Ignore bool `json:"ignore"`
}

type EvaluationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type SplitPaymentView struct {
	QuoteID            int64           `json:"quote_id"`
	State              AllocationState `json:"state"`
	GrandTotal         string          `json:"grand_total"`
	Remaining          string          `json:"remaining"`
	RemainingFormatted string          `json:"remaining_formatted"`
}
