package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/app"
	"github.com/Domenick1991/hotelbooking/internal/bootstrap"
	"github.com/Domenick1991/hotelbooking/internal/catalog"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/Domenick1991/hotelbooking/internal/service/hotels"
	"github.com/Domenick1991/hotelbooking/internal/store"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env")

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hotelCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}

	bookingStore := store.New(store.NewFileStorage(cfg.Storage.Path), logger)
	bookingStore.Hydrate()

	hotelService := hotels.NewHotelService(hotelCatalog)
	bookingService := booking.NewService(
		bookingStore,
		hotelCatalog,
		logger,
		booking.WithMaxGuests(cfg.Booking.MaxGuests),
	)

	if err := bootstrap.Run(ctx, cfg, logger, hotelService, bookingService); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
