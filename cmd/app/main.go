package main

import (
	"github.com/rs/zerolog/log"

	"sahayak/config"
	"sahayak/di"
	availabilityModel "sahayak/internal/domains/availability/model"
	"sahayak/shared/logger"
	"sahayak/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	services := di.InitializeServices()

	now := timezone.Now()
	options := services.Availability.ValidTimeOptions(availabilityModel.RoleStart, now, now)

	log.Info().
		Str("app", cfg.App.Name).
		Ints("hours", options.Hours).
		Ints("minutes", options.Minutes).
		Msg("Booking engine initialized; bookable start hours for today")
}
