package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zvrva/hotelease/config"
	"github.com/zvrva/hotelease/internal/bootstrap"
	"github.com/zvrva/hotelease/internal/kafka"
	"github.com/zvrva/hotelease/internal/service/booking"
	"github.com/zvrva/hotelease/internal/service/metrics"
	"github.com/zvrva/hotelease/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	setupLogger(os.Getenv("ENVIRONMENT"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init storage")
	}

	bookingOpts := []booking.Option{}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	bookingSvc := booking.NewService(store, bookingOpts...)
	metricsSvc := metrics.NewService(store, metrics.WithTotalRooms(cfg.Hotel.TotalRooms))

	log.Info().
		Str("address", cfg.HTTP.Address).
		Str("storage", cfg.Storage.Backend).
		Msg("starting server")

	if err := bootstrap.Run(ctx, cfg, bookingSvc, metricsSvc); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "file":
		return storage.NewFileStore(cfg.Storage.FilePath), nil
	case "redis":
		return storage.NewRedisStore(cfg.Redis), nil
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
