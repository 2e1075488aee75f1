package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"sahayak/config"
	"sahayak/infras/otel"
	"sahayak/internal/domains/pricing/model"
	"sahayak/internal/domains/pricing/repository"
	"sahayak/shared"
	"sahayak/shared/constant"
	"sahayak/shared/failure"
)

// Pricing is the single tiered-price algorithm shared by the cook, maid and
// nanny flows. ComputePrice is a pure function; ResolveBaseRate is a total
// lookup that answers the caller's fallback instead of failing, because
// checkout must never hard-fail on a pricing-table gap.
type Pricing interface {
	ComputePrice(basePrice float64, quantity int) float64
	ResolveBaseRate(ctx context.Context, query model.RateQuery) float64
	PriceSelection(ctx context.Context, query model.RateQuery, quantity int) (model.PricedSelection, error)
}

type serviceImpl struct {
	repo repository.PriceBook
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.PriceBook, cfg *config.Config, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Per-unit rates of the progressive bands: units above 3 add 20% of the base
// each, units above 6 add 10% of the band-2 ceiling, units above 9 add 5% of
// the band-3 ceiling. Evaluating both neighbouring formulas at quantity
// 3, 6 or 9 yields the same value; that boundary continuity is load-bearing
// and covered by tests.
const (
	bandTwoRate   = 0.20
	bandThreeRate = 0.10
	bandFourRate  = 0.05
)

func (s *serviceImpl) ComputePrice(basePrice float64, quantity int) float64 {
	priceAtSix := basePrice + basePrice*bandTwoRate*3
	priceAtNine := priceAtSix + priceAtSix*bandThreeRate*3

	switch {
	case quantity <= 3:
		return basePrice
	case quantity <= 6:
		return basePrice + basePrice*bandTwoRate*float64(quantity-3)
	case quantity <= 9:
		return priceAtSix + priceAtSix*bandThreeRate*float64(quantity-6)
	default:
		return priceAtNine + priceAtNine*bandFourRate*float64(quantity-9)
	}
}

// ResolveBaseRate selects one row from the price book and reads the rate for
// the requested cadence. Preference order: booking-type tag, exact size
// label, textual band accepting the numeric value, first remaining
// candidate. When the selected row lacks the cadence rate, a monthly
// estimate is derived from the week, visit or day rate; that estimate is
// best effort, not authoritative pricing.
func (s *serviceImpl) ResolveBaseRate(ctx context.Context, query model.RateQuery) float64 {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveBaseRate")
	defer scope.End()

	rows, err := s.repo.GetByCategory(ctx, query.Category)
	if err != nil {
		log.Warn().Err(err).Str("category", query.Category).Msg("price book unavailable, using fallback price")
		scope.TraceError(err)

		return query.Fallback
	}

	candidates := rows[:0:0]
	for _, row := range rows {
		if query.SubCategory != constant.Empty && !strings.EqualFold(row.SubCategory, query.SubCategory) {
			continue
		}
		candidates = append(candidates, row)
	}

	if len(candidates) == 0 {
		log.Warn().
			Str("category", query.Category).
			Str("subCategory", query.SubCategory).
			Msg("no price rows for category, using fallback price")

		return query.Fallback
	}

	preferred := candidates[:0:0]
	for _, row := range candidates {
		if strings.EqualFold(row.BookingType, query.BookingType) {
			preferred = append(preferred, row)
		}
	}
	if len(preferred) == 0 {
		preferred = candidates
	}

	row := selectRow(preferred, query)
	rate := s.rateForCadence(row, query.Cadence)
	if rate <= 0 {
		log.Warn().
			Str("category", query.Category).
			Str("band", row.Band).
			Msg("selected price row carries no usable rate, using fallback price")

		return query.Fallback
	}

	scope.SetAttribute("rate", rate)

	return rate
}

func (s *serviceImpl) PriceSelection(ctx context.Context, query model.RateQuery, quantity int) (res model.PricedSelection, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PriceSelection")
	defer scope.End()
	defer scope.TraceIfError(err)

	if quantity < 1 {
		return res, failure.BadRequestFromString("quantity must be at least 1") // nolint:wrapcheck
	}

	base := s.ResolveBaseRate(ctx, query)

	return model.PricedSelection{
		Quantity:      quantity,
		BasePrice:     base,
		ComputedPrice: shared.RoundToPaise(s.ComputePrice(base, quantity)),
	}, nil
}

// selectRow applies the label-then-band-then-first preference inside the
// already type-filtered candidate set.
func selectRow(rows []model.PriceRow, query model.RateQuery) model.PriceRow {
	if query.SizeLabel != constant.Empty {
		for _, row := range rows {
			if strings.EqualFold(row.Band, query.SizeLabel) {
				return row
			}
		}
	}

	for _, row := range rows {
		if matchBand(row.Band, query.Value) {
			return row
		}
	}

	return rows[0]
}

func (s *serviceImpl) rateForCadence(row model.PriceRow, cadence model.Cadence) float64 {
	switch cadence {
	case model.CadenceDaily:
		if row.DayPrice > 0 {
			return row.DayPrice
		}
	case model.CadenceMonthly:
		if row.MonthPrice > 0 {
			return row.MonthPrice
		}
	}

	// Best-effort monthly estimate from whichever rate the row carries.
	if row.WeekPrice > 0 {
		return row.WeekPrice * model.WeeksPerMonth
	}
	if row.VisitPrice > 0 {
		return row.VisitPrice * model.VisitsPerMonth
	}
	if row.DayPrice > 0 {
		return row.DayPrice * model.WorkingDaysPerMonth
	}

	return 0
}
