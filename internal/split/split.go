// Package split holds the allocation rules for paying one checkout with several
// payment methods. Every function operates on an explicitly passed state; callers
// own loading and storing it.
package split

import (
	"errors"
	"strings"

	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultMethodPrefix = "openpos"
	SplitMethodCode     = "openpos_split_payment"

	// AmountScale and AmountIntegerDigits mirror the NUMERIC(20,4) money columns.
	AmountScale         = 4
	AmountIntegerDigits = 16
)

var maxAmount = decimal.New(1, AmountIntegerDigits)

var (
	ErrChangesNotApplied = errors.New("Cannot place order. You must apply split payment changes.")
	ErrNoMethodSelected  = errors.New("Cannot place order. You must select one method to use within split payments.")
	ErrInsufficientTotal = errors.New("Cannot place order. The total amount between split payments is less than the cart grand total.")

	ErrInvalidAmount = errors.New("amount entered is not valid")
	ErrUnknownMethod = errors.New("payment method is not available for split payment")
)

// Filter decides which catalog methods may take part in a split.
type Filter struct {
	Prefix       string
	ExcludedCode string
}

func DefaultFilter() Filter {
	return Filter{Prefix: DefaultMethodPrefix, ExcludedCode: SplitMethodCode}
}

// Eligible excludes the split method itself so it cannot select itself.
func (f Filter) Eligible(code string) bool {
	if !strings.HasPrefix(code, f.Prefix) {
		return false
	}
	return code != f.ExcludedCode
}

// LoadCatalog merges eligible methods into state. Amounts already entered for a
// known code are kept.
func LoadCatalog(state *models.AllocationState, catalog []models.PaymentMethod, filter Filter) {
	for _, method := range catalog {
		if !filter.Eligible(method.Code) {
			continue
		}
		if state.IndexOf(method.Code) != -1 {
			continue
		}
		state.Allocations = append(state.Allocations, models.Allocation{
			Code:   method.Code,
			Title:  method.Title,
			Amount: decimal.Zero,
		})
	}
}

// ParseAmount accepts an empty string as zero. Only plain decimal notation
// that fits NUMERIC(20,4) is accepted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	// exponent notation would let a short input expand into an unbounded digit string
	if strings.ContainsAny(raw, "eE") || len(raw) > AmountIntegerDigits+AmountScale+2 {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.IsNegative() || amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.Exponent() < -AmountScale && !amount.Equal(amount.Truncate(AmountScale)) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func SetAmount(state *models.AllocationState, code, raw string) error {
	amount, err := ParseAmount(raw)
	if err != nil {
		return err
	}

	idx := state.IndexOf(code)
	if idx == -1 {
		return ErrUnknownMethod
	}

	state.Allocations[idx].Amount = amount
	return nil
}

func SetIgnoreOutstandingBalance(state *models.AllocationState, ignore bool) {
	state.IgnoreOutstandingBalance = ignore
}

// Save marks the allocation as applied and returns the entries to persist.
func Save(state *models.AllocationState) []models.SplitPaymentEntry {
	state.Applied = true

	entries := make([]models.SplitPaymentEntry, 0, len(state.Allocations))
	for _, a := range state.Allocations {
		if !a.InUse() {
			continue
		}
		entries = append(entries, models.SplitPaymentEntry{
			Title:  a.Title,
			Amount: a.Amount,
		})
	}
	return entries
}

func TotalAllocated(state models.AllocationState) decimal.Decimal {
	total := decimal.Zero
	for _, a := range state.Allocations {
		if a.InUse() {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// TotalRemaining is negative when the split exceeds grandTotal.
func TotalRemaining(state models.AllocationState, grandTotal decimal.Decimal) decimal.Decimal {
	return grandTotal.Sub(TotalAllocated(state))
}

// EvaluateCompletion returns nil when the order may be placed. Over-allocation
// is accepted.
func EvaluateCompletion(state models.AllocationState, grandTotal decimal.Decimal) error {
	if !state.Applied {
		return ErrChangesNotApplied
	}

	methodInUse := false
	totalAmount := decimal.Zero
	for _, a := range state.Allocations {
		if a.InUse() {
			methodInUse = true
			totalAmount = totalAmount.Add(a.Amount)
		}
	}

	if !methodInUse {
		return ErrNoMethodSelected
	}

	if totalAmount.LessThan(grandTotal) && !state.IgnoreOutstandingBalance {
		return ErrInsufficientTotal
	}

	return nil
}
