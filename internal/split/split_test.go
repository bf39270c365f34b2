package split

import (
	"encoding/json"
	"testing"

	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func stateWith(applied bool, amounts ...string) models.AllocationState {
	codes := []string{"openpos_cash", "openpos_card", "openpos_voucher"}
	state := models.AllocationState{Applied: applied}
	for i, amount := range amounts {
		state.Allocations = append(state.Allocations, models.Allocation{
			Code:   codes[i],
			Title:  codes[i],
			Amount: d(amount),
		})
	}
	return state
}

func TestFilterEligible(t *testing.T) {
	f := DefaultFilter()

	tests := []struct {
		code string
		want bool
	}{
		{code: "openpos_cash", want: true},
		{code: "openpos_card", want: true},
		{code: "openpos_split_payment", want: false},
		{code: "checkmo", want: false},
		{code: "paypal_openpos", want: false},
		{code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Eligible(tt.code))
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog := []models.PaymentMethod{
		{Code: "openpos_cash", Title: "Cash"},
		{Code: "checkmo", Title: "Check / Money order"},
		{Code: "openpos_split_payment", Title: "Split Payment"},
		{Code: "openpos_card", Title: "Card"},
	}

	t.Run("new codes start at zero", func(t *testing.T) {
		var state models.AllocationState
		LoadCatalog(&state, catalog, DefaultFilter())

		require.Len(t, state.Allocations, 2)
		assert.Equal(t, "openpos_cash", state.Allocations[0].Code)
		assert.Equal(t, "Cash", state.Allocations[0].Title)
		assert.True(t, state.Allocations[0].Amount.IsZero())
		assert.Equal(t, "openpos_card", state.Allocations[1].Code)
	})

	t.Run("refresh keeps entered amounts", func(t *testing.T) {
		state := models.AllocationState{
			Allocations: []models.Allocation{{Code: "openpos_cash", Title: "Cash", Amount: d("25.50")}},
		}
		LoadCatalog(&state, catalog, DefaultFilter())
		LoadCatalog(&state, catalog, DefaultFilter())

		require.Len(t, state.Allocations, 2)
		assert.True(t, d("25.50").Equal(state.Allocations[0].Amount))
		assert.True(t, state.Allocations[1].Amount.IsZero())
	})

	t.Run("empty catalog", func(t *testing.T) {
		var state models.AllocationState
		LoadCatalog(&state, nil, DefaultFilter())
		assert.Empty(t, state.Allocations)
	})

	t.Run("custom filter", func(t *testing.T) {
		var state models.AllocationState
		LoadCatalog(&state, []models.PaymentMethod{
			{Code: "pos_cash", Title: "Cash"},
			{Code: "pos_split", Title: "Split"},
		}, Filter{Prefix: "pos_", ExcludedCode: "pos_split"})

		require.Len(t, state.Allocations, 1)
		assert.Equal(t, "pos_cash", state.Allocations[0].Code)
	})
}

func TestSetAmount(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		raw     string
		wantErr error
		want    string
	}{
		{name: "valid", code: "openpos_cash", raw: "12.34", want: "12.34"},
		{name: "trimmed", code: "openpos_cash", raw: " 7 ", want: "7"},
		{name: "cleared", code: "openpos_cash", raw: "", want: "0"},
		{name: "negative", code: "openpos_cash", raw: "-1", wantErr: ErrInvalidAmount, want: "5"},
		{name: "not numeric", code: "openpos_cash", raw: "ten", wantErr: ErrInvalidAmount, want: "5"},
		{name: "unknown method", code: "openpos_gift", raw: "3", wantErr: ErrUnknownMethod, want: "5"},
		{name: "huge exponent", code: "openpos_cash", raw: "1e400000", wantErr: ErrInvalidAmount, want: "5"},
		{name: "tiny exponent", code: "openpos_cash", raw: "1e-9", wantErr: ErrInvalidAmount, want: "5"},
		{name: "upper case exponent", code: "openpos_cash", raw: "2E3", wantErr: ErrInvalidAmount, want: "5"},
		{name: "too many decimals", code: "openpos_cash", raw: "1.23456", wantErr: ErrInvalidAmount, want: "5"},
		{name: "too many integer digits", code: "openpos_cash", raw: "12345678901234567", wantErr: ErrInvalidAmount, want: "5"},
		{name: "largest amount", code: "openpos_cash", raw: "9999999999999999.9999", want: "9999999999999999.9999"},
		{name: "trailing zero decimals", code: "openpos_cash", raw: "1.500000", want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := stateWith(false, "5")

			err := SetAmount(&state, tt.code, tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, d(tt.want).Equal(state.Allocations[0].Amount))
		})
	}
}

func TestSave(t *testing.T) {
	t.Run("drops unused methods and keeps order", func(t *testing.T) {
		state := stateWith(false, "10", "0", "2.5")

		entries := Save(&state)

		assert.True(t, state.Applied)
		require.Len(t, entries, 2)
		assert.Equal(t, "openpos_cash", entries[0].Title)
		assert.Equal(t, "openpos_voucher", entries[1].Title)

		payload, err := json.Marshal(entries)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"title":"openpos_cash","amount":10},{"title":"openpos_voucher","amount":2.5}]`, string(payload))
	})

	t.Run("applies with nothing allocated", func(t *testing.T) {
		state := stateWith(false, "0", "0")

		entries := Save(&state)

		assert.True(t, state.Applied)
		assert.Empty(t, entries)

		payload, err := json.Marshal(entries)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(payload))
	})
}

func TestTotalRemaining(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		total   string
		want    string
	}{
		{name: "partially covered", amounts: []string{"30"}, total: "100", want: "70"},
		{name: "exact", amounts: []string{"60", "40"}, total: "100", want: "0"},
		{name: "over allocated", amounts: []string{"80", "40.01"}, total: "100", want: "-20.01"},
		{name: "nothing allocated", total: "19.99", want: "19.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := stateWith(false, tt.amounts...)
			assert.True(t, d(tt.want).Equal(TotalRemaining(state, d(tt.total))),
				"got %s", TotalRemaining(state, d(tt.total)))
		})
	}
}

func TestEvaluateCompletion(t *testing.T) {
	tests := []struct {
		name    string
		state   models.AllocationState
		ignore  bool
		total   string
		wantErr error
	}{
		{name: "not applied", state: stateWith(false, "100"), total: "100", wantErr: ErrChangesNotApplied},
		{name: "not applied and empty", state: stateWith(false), total: "100", wantErr: ErrChangesNotApplied},
		{name: "no method in use", state: stateWith(true, "0", "0"), total: "100", wantErr: ErrNoMethodSelected},
		{name: "insufficient total", state: stateWith(true, "30"), total: "100", wantErr: ErrInsufficientTotal},
		{name: "covered by two methods", state: stateWith(true, "60", "40"), total: "100"},
		{name: "outstanding balance ignored", state: stateWith(true, "30"), ignore: true, total: "100"},
		{name: "over allocated", state: stateWith(true, "150"), total: "100"},
		{name: "ignore does not skip method check", state: stateWith(true, "0"), ignore: true, total: "100", wantErr: ErrNoMethodSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			SetIgnoreOutstandingBalance(&state, tt.ignore)

			err := EvaluateCompletion(state, d(tt.total))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
