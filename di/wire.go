//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"sahayak/config"
	"sahayak/infras/otel"

	availabilityService "sahayak/internal/domains/availability/service"
	bookingRepository "sahayak/internal/domains/booking/repository"
	bookingService "sahayak/internal/domains/booking/service"
	cartRepository "sahayak/internal/domains/cart/repository"
	cartService "sahayak/internal/domains/cart/service"
	pricingRepository "sahayak/internal/domains/pricing/repository"
	pricingService "sahayak/internal/domains/pricing/service"
)

// Services is the wired object graph: one shared instance of every domain
// service, handed to whichever surface embeds this module.
type Services struct {
	Availability availabilityService.Availability
	Pricing      pricingService.Pricing
	Cart         cartService.Cart
	Dialog       bookingService.Dialog
}

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var cartDomain = wire.NewSet(
	cartRepository.New,
	cartService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	availabilityDomain,
	pricingDomain,
	cartDomain,
	bookingDomain,
)

func InitializeServices() *Services {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		wire.Struct(new(Services), "*"),
	)

	return &Services{}
}
