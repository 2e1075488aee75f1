package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sahayak/config"
	"sahayak/infras/otel"
	availabilityModel "sahayak/internal/domains/availability/model"
	"sahayak/internal/domains/cart/model"
	"sahayak/internal/domains/cart/model/dto"
	"sahayak/internal/domains/cart/repository"
	pricingModel "sahayak/internal/domains/pricing/model"
	pricingService "sahayak/internal/domains/pricing/service"
	"sahayak/shared/constant"
	"sahayak/shared/failure"
	"sahayak/shared/timezone"
	"sahayak/shared/validator"
)

// Cart manages the priced line items a customer has staged for checkout.
// Every price on a line item is produced by the pricing service; the cart
// never computes a rupee amount on its own.
type Cart interface {
	Add(ctx context.Context, req dto.AddItemRequest) (dto.LineItemResponse, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (dto.LineItemResponse, error)
	Remove(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (dto.LineItemResponse, error)
	GetAll(ctx context.Context) (dto.GetCartResponse, error)
	Clear(ctx context.Context) error
}

type serviceImpl struct {
	repo    repository.Cart
	pricing pricingService.Pricing
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Cart, pricing pricingService.Pricing, cfg *config.Config, otel otel.Otel) Cart {
	return &serviceImpl{
		repo:    repo,
		pricing: pricing,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddItemRequest) (res dto.LineItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddCartItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	window, err := req.Window()
	if err != nil {
		log.Error().Err(err).Str("start", req.Start).Msg("failed parsing booking window stamps")

		return res, failure.BadRequestFromString("booking window stamps are malformed") // nolint:wrapcheck
	}

	switch window.Option {
	case availabilityModel.OptionDate, availabilityModel.OptionShortTerm, availabilityModel.OptionMonthly:
	default:
		return res, failure.BadRequestFromString("unknown booking option") // nolint:wrapcheck
	}

	priced, err := s.pricing.PriceSelection(ctx, s.rateQuery(req.Service, req.SubCategory, req.SizeLabel, req.Quantity, window.Option), req.Quantity)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	item := req.ToModel(userID, priced, window)

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Str("service", item.Service).Msg("failed inserting cart item")

		return res, fmt.Errorf("inserting cart item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

// UpdateQuantity reprices the line item for the new quantity before storing
// it, so the cart total always reflects the tiered formula.
func (s *serviceImpl) UpdateQuantity(ctx context.Context, id string, quantity int) (res dto.LineItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCartItemQuantity")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed reading cart item")

		return res, fmt.Errorf("reading cart item: %w", err)
	}
	if item.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	priced, err := s.pricing.PriceSelection(ctx, s.rateQuery(item.Service, item.SubCategory, item.SizeLabel, quantity, item.Window.Option), quantity)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	item.Quantity = priced.Quantity
	item.BasePrice = priced.BasePrice
	item.ComputedPrice = priced.ComputedPrice
	item.ModifiedAt = timezone.Now()
	item.ModifiedBy = userID

	if err = s.repo.Update(ctx, item); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed updating cart item")

		return res, fmt.Errorf("updating cart item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Remove(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveCartItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed removing cart item")

		return fmt.Errorf("removing cart item: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.LineItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCartItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed reading cart item")

		return res, fmt.Errorf("reading cart item: %w", err)
	}
	if item.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCart")
	defer scope.End()
	defer scope.TraceIfError(err)

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed listing cart items")

		return res, fmt.Errorf("listing cart items: %w", err)
	}

	res.FromModels(items)

	return res, nil
}

func (s *serviceImpl) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClearCart")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("failed clearing cart")

		return fmt.Errorf("clearing cart: %w", err)
	}

	return nil
}

// rateQuery maps a cart selection onto the price book. Monthly engagements
// prefer monthly-tagged rows and a monthly cadence; everything else prices
// per visit off the day rate.
func (s *serviceImpl) rateQuery(service, subCategory, sizeLabel string, quantity int, option availabilityModel.BookingOption) pricingModel.RateQuery {
	query := pricingModel.RateQuery{
		Category:    service,
		SubCategory: subCategory,
		SizeLabel:   sizeLabel,
		Value:       quantity,
		BookingType: pricingModel.BookingTypeOnDemand,
		Cadence:     pricingModel.CadenceDaily,
		Fallback:    s.fallbackPrice(service),
	}

	if option == availabilityModel.OptionMonthly {
		query.BookingType = pricingModel.BookingTypeMonthly
		query.Cadence = pricingModel.CadenceMonthly
	}

	return query
}

func (s *serviceImpl) fallbackPrice(service string) float64 {
	switch service {
	case constant.ServiceCook:
		return s.cfg.Pricing.DefaultCookPrice
	case constant.ServiceNanny:
		return s.cfg.Pricing.DefaultNannyPrice
	default:
		return s.cfg.Pricing.DefaultMaidPrice
	}
}
