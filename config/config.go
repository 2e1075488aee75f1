package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME" default:"sahayak"`
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"debug"`
		Timezone string `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
	} `envconfig:"APP"`

	// Booking carries the business-hours and booking-window rules shared by
	// every dialog. OpeningHour is the inclusive lower bound of bookable time,
	// CutoffHour the exclusive upper bound: the last bookable hour slot is
	// CutoffHour-1.
	Booking struct {
		OpeningHour     int `envconfig:"OPENING_HOUR" default:"5"`
		CutoffHour      int `envconfig:"CUTOFF_HOUR" default:"22"`
		CutoffMinute    int `envconfig:"CUTOFF_MINUTE" default:"0"`
		LeadTimeMinutes int `envconfig:"LEAD_TIME_MINUTES" default:"30"`
		RangeCapDays    int `envconfig:"RANGE_CAP_DAYS" default:"21"`
		MonthlyCapDays  int `envconfig:"MONTHLY_CAP_DAYS" default:"90"`
	} `envconfig:"BOOKING"`

	// Pricing holds the per-service fallback prices (INR) used when the price
	// book has no matching row. Checkout must never block on a pricing gap.
	Pricing struct {
		DefaultCookPrice  float64 `envconfig:"DEFAULT_COOK_PRICE" default:"1500"`
		DefaultMaidPrice  float64 `envconfig:"DEFAULT_MAID_PRICE" default:"1000"`
		DefaultNannyPrice float64 `envconfig:"DEFAULT_NANNY_PRICE" default:"2000"`
	} `envconfig:"PRICING"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if conf.Booking.OpeningHour >= conf.Booking.CutoffHour {
			log.Fatal().
				Int("openingHour", conf.Booking.OpeningHour).
				Int("cutoffHour", conf.Booking.CutoffHour).
				Msg("Invalid business hours: opening hour must be before cutoff hour")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
