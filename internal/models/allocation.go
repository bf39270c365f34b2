package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type PaymentMethod struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

type Allocation struct {
	Code   string          `json:"code"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}

func (a Allocation) InUse() bool {
	return a.Amount.IsPositive()
}

// AllocationState is owned by exactly one checkout session.
type AllocationState struct {
	Allocations              []Allocation `json:"allocations"`
	Applied                  bool         `json:"applied"`
	IgnoreOutstandingBalance bool         `json:"ignore_outstanding_balance"`
}

func (s *AllocationState) IndexOf(code string) int {
	for i := range s.Allocations {
		if s.Allocations[i].Code == code {
			return i
		}
	}
	return -1
}

// SplitPaymentEntry is one element of the split_payment_data payload.
type SplitPaymentEntry struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}

func (e SplitPaymentEntry) MarshalJSON() ([]byte, error) {
	type EntryAlias SplitPaymentEntry

	aliasVal := struct {
		EntryAlias
		Amount json.Number `json:"amount"`
	}{
		EntryAlias: EntryAlias(e),
		Amount:     json.Number(e.Amount.String()),
	}

	return json.Marshal(aliasVal)
}
