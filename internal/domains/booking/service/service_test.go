package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sahayak/config"
	"sahayak/infras/otel/mocks"
	availabilityModel "sahayak/internal/domains/availability/model"
	availabilityService "sahayak/internal/domains/availability/service"
	"sahayak/internal/domains/booking/model/dto"
	"sahayak/internal/domains/booking/repository"
	"sahayak/internal/domains/booking/service"
	cartRepository "sahayak/internal/domains/cart/repository"
	cartService "sahayak/internal/domains/cart/service"
	pricingRepository "sahayak/internal/domains/pricing/repository"
	pricingService "sahayak/internal/domains/pricing/service"
	"sahayak/shared/constant"
	"sahayak/shared/failure"
	"sahayak/shared/timezone"
)

type fixture struct {
	dialog service.Dialog
	cart   cartService.Cart
	now    time.Time
}

func newFixture() *fixture {
	cfg := &config.Config{}
	cfg.Booking.OpeningHour = 5
	cfg.Booking.CutoffHour = 22
	cfg.Booking.LeadTimeMinutes = 30
	cfg.Booking.RangeCapDays = 21
	cfg.Booking.MonthlyCapDays = 90
	cfg.Pricing.DefaultCookPrice = 1500
	cfg.Pricing.DefaultMaidPrice = 1000
	cfg.Pricing.DefaultNannyPrice = 2000

	o := mocks.NewOtel()
	pricing := pricingService.New(pricingRepository.New(), cfg, o)
	cart := cartService.New(cartRepository.New(o), pricing, cfg, o)

	f := &fixture{
		cart: cart,
		now:  at(2026, 1, 10, 9, 0),
	}
	f.dialog = service.New(
		repository.New(o),
		availabilityService.New(cfg),
		cart,
		o,
		service.WithClock(func() time.Time { return f.now }),
	)

	return f
}

// Dialog dates parse in the application timezone, so the fake clock has to
// tick in the same location.
func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, timezone.GetLocation())
}

func customerCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCustomer)
}

func providerCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "provider-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleProvider)
}

func openDialog(t *testing.T, f *fixture, ctx context.Context, option string) dto.SessionResponse {
	t.Helper()

	res, err := f.dialog.Open(ctx, dto.OpenDialogRequest{
		Service:     "maid",
		SubCategory: "House Size",
		SizeLabel:   "2BHK",
		Quantity:    5,
		Option:      option,
	})
	require.NoError(t, err)

	return res
}

func TestDialogService_HappyPath(t *testing.T) {
	f := newFixture()
	ctx := customerCtx()

	opened := openDialog(t, f, ctx, "Date")
	assert.Equal(t, "empty", opened.State)

	dated, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-10"})
	require.NoError(t, err)
	assert.Equal(t, "date_chosen", dated.State)

	// At 09:00 the lead time pushes the first offered hour to 10.
	options, err := f.dialog.TimeOptions(ctx, opened.ID, availabilityModel.RoleStart)
	require.NoError(t, err)
	require.NotEmpty(t, options.Hours)
	assert.Equal(t, 10, options.Hours[0])
	assert.Equal(t, 21, options.Hours[len(options.Hours)-1])
	assert.Len(t, options.Minutes, 12)

	_, err = f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 9, Minute: 10})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	timed, err := f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 9, Minute: 35})
	require.NoError(t, err)
	assert.Equal(t, "confirmable", timed.State)
	assert.True(t, timed.Confirmable)
	assert.Equal(t, "2026-01-10 09:35", timed.Start)
	assert.Equal(t, "2026-01-10 10:35", timed.End)

	item, err := f.dialog.Confirm(ctx, opened.ID)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, item.BasePrice, 1e-9)
	assert.InDelta(t, 560.0, item.ComputedPrice, 1e-9)

	// The confirmed session is discarded.
	err = f.dialog.Close(ctx, opened.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	cart, err := f.cart.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems)
}

func TestDialogService_ChooseDate(t *testing.T) {
	t.Run("past date is refused", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-09"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("today is refused once past cutoff", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		f.now = at(2026, 1, 10, 22, 15)
		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-10"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("new date drops the earlier time pick", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
		require.NoError(t, err)
		_, err = f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
		require.NoError(t, err)

		redated, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-13"})

		require.NoError(t, err)
		assert.Equal(t, "date_chosen", redated.State)
		assert.Empty(t, redated.End)
	})
}

func TestDialogService_Confirm(t *testing.T) {
	t.Run("provider is refused", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
		require.NoError(t, err)
		_, err = f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
		require.NoError(t, err)

		_, err = f.dialog.Confirm(providerCtx(), opened.ID)

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("cutoff reached while the dialog was open", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
		require.NoError(t, err)
		_, err = f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
		require.NoError(t, err)

		f.now = at(2026, 1, 10, 22, 5)
		_, err = f.dialog.Confirm(ctx, opened.ID)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("no time picked yet", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.Confirm(ctx, opened.ID)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestDialogService_ShortTerm(t *testing.T) {
	f := newFixture()
	ctx := customerCtx()
	opened := openDialog(t, f, ctx, "Short term")

	_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
	require.NoError(t, err)

	// Without an end the range is not yet bookable.
	timed, err := f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
	require.NoError(t, err)
	assert.Equal(t, "rejected", timed.State)
	assert.False(t, timed.Confirmable)

	ended, err := f.dialog.ChooseEnd(ctx, opened.ID, dto.ChooseEndRequest{Date: "2026-01-14", Hour: 11, Minute: 0})
	require.NoError(t, err)
	assert.Equal(t, "confirmable", ended.State)
	assert.Equal(t, "2026-01-14 11:00", ended.End)

	item, err := f.dialog.Confirm(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-14 11:00", item.End)
}

func TestDialogService_ChooseEnd(t *testing.T) {
	t.Run("refused for single-visit bookings", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
		require.NoError(t, err)
		_, err = f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
		require.NoError(t, err)

		_, err = f.dialog.ChooseEnd(ctx, opened.ID, dto.ChooseEndRequest{Date: "2026-01-13", Hour: 10, Minute: 0})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("end before start snaps to one hour after start", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Short term")

		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
		require.NoError(t, err)
		_, err = f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
		require.NoError(t, err)

		ended, err := f.dialog.ChooseEnd(ctx, opened.ID, dto.ChooseEndRequest{Date: "2026-01-11", Hour: 9, Minute: 0})

		require.NoError(t, err)
		assert.Equal(t, "2026-01-12 11:00", ended.End)
	})
}

func TestDialogService_Monthly(t *testing.T) {
	f := newFixture()
	ctx := customerCtx()

	opened, err := f.dialog.Open(ctx, dto.OpenDialogRequest{
		Service:     "cook",
		SubCategory: "People",
		Quantity:    4,
		Option:      "Monthly",
	})
	require.NoError(t, err)

	_, err = f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
	require.NoError(t, err)

	timed, err := f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-12 10:00", timed.End)
	assert.Equal(t, "confirmable", timed.State)

	item, err := f.dialog.Confirm(ctx, opened.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3500.0, item.BasePrice, 1e-9)
	assert.InDelta(t, 4200.0, item.ComputedPrice, 1e-9)
}

func TestDialogService_SetOption(t *testing.T) {
	t.Run("rederives the end for the new option", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
		require.NoError(t, err)
		timed, err := f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
		require.NoError(t, err)
		assert.Equal(t, "2026-01-12 11:00", timed.End)

		switched, err := f.dialog.SetOption(ctx, opened.ID, availabilityModel.OptionMonthly)

		require.NoError(t, err)
		assert.Equal(t, "Monthly", switched.Option)
		assert.Equal(t, "2026-02-12 10:00", switched.End)
		assert.Equal(t, "confirmable", switched.State)
	})

	t.Run("short term requires a fresh end", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.ChooseDate(ctx, opened.ID, dto.ChooseDateRequest{Date: "2026-01-12"})
		require.NoError(t, err)
		_, err = f.dialog.ChooseTime(ctx, opened.ID, dto.ChooseTimeRequest{Hour: 10, Minute: 0})
		require.NoError(t, err)

		switched, err := f.dialog.SetOption(ctx, opened.ID, availabilityModel.OptionShortTerm)

		require.NoError(t, err)
		assert.Empty(t, switched.End)
		assert.Equal(t, "rejected", switched.State)
	})

	t.Run("unknown option is refused", func(t *testing.T) {
		f := newFixture()
		ctx := customerCtx()
		opened := openDialog(t, f, ctx, "Date")

		_, err := f.dialog.SetOption(ctx, opened.ID, availabilityModel.BookingOption("Fortnightly"))

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestDialogService_Open(t *testing.T) {
	f := newFixture()

	t.Run("unknown option is refused", func(t *testing.T) {
		_, err := f.dialog.Open(customerCtx(), dto.OpenDialogRequest{
			Service:  "maid",
			Quantity: 1,
			Option:   "Fortnightly",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown service is refused", func(t *testing.T) {
		_, err := f.dialog.Open(customerCtx(), dto.OpenDialogRequest{
			Service:  "driver",
			Quantity: 1,
			Option:   "Date",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown session yields not found", func(t *testing.T) {
		_, err := f.dialog.TimeOptions(customerCtx(), "missing", availabilityModel.RoleStart)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
