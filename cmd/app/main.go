package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/astrotravel/spaceport/config"
	"github.com/astrotravel/spaceport/internal/bootstrap"
	"github.com/astrotravel/spaceport/internal/cache"
	"github.com/astrotravel/spaceport/internal/kafka"
	"github.com/astrotravel/spaceport/internal/repository"
	"github.com/astrotravel/spaceport/internal/service/booking"
	"github.com/astrotravel/spaceport/internal/service/catalog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	destinationRepo := repository.NewDestinationRepository(pool)
	tripRepo := repository.NewTripRepository(pool)
	accommodationRepo := repository.NewAccommodationRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	catalogService := catalog.NewCatalogService(destinationRepo, tripRepo, accommodationRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		tripRepo,
		accommodationRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		logger,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, catalogService, bookingService, logger); err != nil {
		logger.WithError(err).Fatal("server error")
	}
}
