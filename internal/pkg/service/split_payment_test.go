package service

import (
	"context"
	"errors"
	"testing"

	"github.com/0x24CaptainParrot/splitpay-service/internal/currency"
	"github.com/0x24CaptainParrot/splitpay-service/internal/mocks"
	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
	"github.com/0x24CaptainParrot/splitpay-service/internal/pkg/repository"
	"github.com/0x24CaptainParrot/splitpay-service/internal/split"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	catalog  *mocks.MockCatalogRepository
	quotes   *mocks.MockQuoteRepository
	sessions *mocks.MockSessionRepository
	svc      *SplitPaymentService
}

func newTestService(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	formatter, err := currency.NewFormatter("USD", "en-US")
	require.NoError(t, err)

	deps := testDeps{
		catalog:  mocks.NewMockCatalogRepository(ctrl),
		quotes:   mocks.NewMockQuoteRepository(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
	}
	deps.svc = NewSplitPaymentService(&repository.Repository{
		Catalog: deps.catalog,
		Quote:   deps.quotes,
		Session: deps.sessions,
	}, formatter, split.DefaultFilter())
	return deps
}

var testCatalog = []models.PaymentMethod{
	{Code: "openpos_cash", Title: "Cash"},
	{Code: "openpos_split_payment", Title: "Split Payment"},
	{Code: "checkmo", Title: "Check / Money order"},
	{Code: "openpos_card", Title: "Card"},
}

func testSession(applied bool, cash, card string) models.CheckoutSession {
	return models.CheckoutSession{
		ID:      "sess-1",
		QuoteID: 7,
		State: models.AllocationState{
			Allocations: []models.Allocation{
				{Code: "openpos_cash", Title: "Cash", Amount: decimal.RequireFromString(cash)},
				{Code: "openpos_card", Title: "Card", Amount: decimal.RequireFromString(card)},
			},
			Applied: applied,
		},
	}
}

func testQuote(total string) models.Quote {
	return models.Quote{ID: 7, GrandTotal: decimal.RequireFromString(total), CurrencyCode: "USD"}
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("loads eligible methods", func(t *testing.T) {
		d := newTestService(t)
		d.quotes.EXPECT().GetQuote(gomock.Any(), int64(7)).Return(testQuote("100"), nil)
		d.catalog.EXPECT().ListPaymentMethods(gomock.Any()).Return(testCatalog, nil)

		var stored models.CheckoutSession
		d.sessions.EXPECT().Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.CheckoutSession) error {
				stored = s
				return nil
			})

		session, err := d.svc.StartSession(ctx, 7)
		require.NoError(t, err)

		assert.NotEmpty(t, session.ID)
		assert.Equal(t, session.ID, stored.ID)
		assert.False(t, session.State.Applied)
		require.Len(t, session.State.Allocations, 2)
		assert.Equal(t, "openpos_cash", session.State.Allocations[0].Code)
		assert.Equal(t, "openpos_card", session.State.Allocations[1].Code)
	})

	t.Run("unknown quote", func(t *testing.T) {
		d := newTestService(t)
		d.quotes.EXPECT().GetQuote(gomock.Any(), int64(8)).Return(models.Quote{}, repository.ErrQuoteNotFound)

		_, err := d.svc.StartSession(ctx, 8)
		assert.ErrorIs(t, err, repository.ErrQuoteNotFound)
	})

	t.Run("catalog failure", func(t *testing.T) {
		d := newTestService(t)
		d.quotes.EXPECT().GetQuote(gomock.Any(), int64(7)).Return(testQuote("100"), nil)
		d.catalog.EXPECT().ListPaymentMethods(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := d.svc.StartSession(ctx, 7)
		assert.Error(t, err)
	})
}

func TestMountKeepsAmounts(t *testing.T) {
	d := newTestService(t)
	session := testSession(false, "15", "0")
	session.State.Allocations = session.State.Allocations[:1]

	d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(session, nil)
	d.catalog.EXPECT().ListPaymentMethods(gomock.Any()).Return(testCatalog, nil)
	d.sessions.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)

	state, err := d.svc.Mount(context.Background(), "sess-1")
	require.NoError(t, err)

	require.Len(t, state.Allocations, 2)
	assert.True(t, decimal.NewFromInt(15).Equal(state.Allocations[0].Amount))
	assert.True(t, state.Allocations[1].Amount.IsZero())
}

func TestSetAmount(t *testing.T) {
	ctx := context.Background()

	t.Run("stores valid amount", func(t *testing.T) {
		d := newTestService(t)
		d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(false, "0", "0"), nil)
		d.sessions.EXPECT().Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.CheckoutSession) error {
				assert.Equal(t, "40.25", s.State.Allocations[1].Amount.String())
				return nil
			})

		state, err := d.svc.SetAmount(ctx, "sess-1", "openpos_card", "40.25")
		require.NoError(t, err)
		assert.Equal(t, "40.25", state.Allocations[1].Amount.String())
	})

	t.Run("invalid amount is not stored", func(t *testing.T) {
		d := newTestService(t)
		d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(false, "0", "0"), nil)

		_, err := d.svc.SetAmount(ctx, "sess-1", "openpos_card", "abc")
		assert.ErrorIs(t, err, split.ErrInvalidAmount)
	})

	t.Run("missing session", func(t *testing.T) {
		d := newTestService(t)
		d.sessions.EXPECT().Load(gomock.Any(), "nope").Return(models.CheckoutSession{}, repository.ErrSessionNotFound)

		_, err := d.svc.SetAmount(ctx, "nope", "openpos_card", "1")
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	})
}

func TestSetIgnoreOutstandingBalance(t *testing.T) {
	d := newTestService(t)
	d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(true, "30", "0"), nil)
	d.sessions.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)

	state, err := d.svc.SetIgnoreOutstandingBalance(context.Background(), "sess-1", true)
	require.NoError(t, err)
	assert.True(t, state.IgnoreOutstandingBalance)
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("persists used methods", func(t *testing.T) {
		d := newTestService(t)
		d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(false, "60", "0"), nil)
		d.quotes.EXPECT().GetQuote(gomock.Any(), int64(7)).Return(testQuote("100"), nil)
		d.quotes.EXPECT().SavePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q models.Quote) error {
				assert.JSONEq(t, `[{"title":"Cash","amount":60}]`,
					q.Payment.AdditionalInformation[models.SplitPaymentDataKey])
				return nil
			})
		d.sessions.EXPECT().Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.CheckoutSession) error {
				assert.True(t, s.State.Applied)
				return nil
			})

		entries, err := d.svc.Save(ctx, "sess-1")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Cash", entries[0].Title)
	})

	t.Run("applies with no amounts", func(t *testing.T) {
		d := newTestService(t)
		d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(false, "0", "0"), nil)
		d.quotes.EXPECT().GetQuote(gomock.Any(), int64(7)).Return(testQuote("100"), nil)
		d.quotes.EXPECT().SavePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q models.Quote) error {
				assert.Equal(t, "[]", q.Payment.AdditionalInformation[models.SplitPaymentDataKey])
				return nil
			})
		d.sessions.EXPECT().Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.CheckoutSession) error {
				assert.True(t, s.State.Applied)
				return nil
			})

		entries, err := d.svc.Save(ctx, "sess-1")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("persistence failure propagates", func(t *testing.T) {
		d := newTestService(t)
		saveErr := errors.New("connection reset")
		d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(false, "60", "0"), nil)
		d.quotes.EXPECT().GetQuote(gomock.Any(), int64(7)).Return(testQuote("100"), nil)
		d.quotes.EXPECT().SavePayment(gomock.Any(), gomock.Any()).Return(saveErr)

		_, err := d.svc.Save(ctx, "sess-1")
		assert.Same(t, saveErr, err)
	})
}

func TestTotalRemaining(t *testing.T) {
	tests := []struct {
		name      string
		session   models.CheckoutSession
		formatted bool
		want      string
	}{
		{name: "raw", session: testSession(false, "30", "20"), want: "50"},
		{name: "raw over allocated", session: testSession(false, "80", "40"), want: "-20"},
		{name: "formatted", session: testSession(false, "30", "20"), formatted: true, want: "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestService(t)
			d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(tt.session, nil)
			d.quotes.EXPECT().GetQuote(gomock.Any(), int64(7)).Return(testQuote("100"), nil)

			got, err := d.svc.TotalRemaining(context.Background(), "sess-1", tt.formatted)
			require.NoError(t, err)
			if tt.formatted {
				assert.Contains(t, got, "$")
				assert.Contains(t, got, tt.want)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestView(t *testing.T) {
	d := newTestService(t)
	d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(true, "25", "0"), nil)
	d.quotes.EXPECT().GetQuote(gomock.Any(), int64(7)).Return(testQuote("99.5"), nil)

	view, err := d.svc.View(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, int64(7), view.QuoteID)
	assert.Equal(t, "99.5", view.GrandTotal)
	assert.Equal(t, "74.5", view.Remaining)
	assert.Contains(t, view.RemainingFormatted, "74")
	assert.True(t, view.State.Applied)
}

func TestEvaluateCompletion(t *testing.T) {
	tests := []struct {
		name    string
		session models.CheckoutSession
		ignore  bool
		wantErr error
	}{
		{name: "not applied", session: testSession(false, "100", "0"), wantErr: split.ErrChangesNotApplied},
		{name: "nothing entered", session: testSession(true, "0", "0"), wantErr: split.ErrNoMethodSelected},
		{name: "short", session: testSession(true, "30", "0"), wantErr: split.ErrInsufficientTotal},
		{name: "short but ignored", session: testSession(true, "30", "0"), ignore: true},
		{name: "covered", session: testSession(true, "60", "40")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestService(t)
			session := tt.session
			session.State.IgnoreOutstandingBalance = tt.ignore
			d.sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(session, nil)
			d.quotes.EXPECT().GetQuote(gomock.Any(), int64(7)).Return(testQuote("100"), nil)

			err := d.svc.EvaluateCompletion(context.Background(), "sess-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
