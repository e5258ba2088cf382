package main

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"pubhouse-be/internal/auth"
	"pubhouse-be/internal/booking"
	"pubhouse-be/internal/cart"
	"pubhouse-be/internal/checkout"
	"pubhouse-be/internal/config"
	"pubhouse-be/internal/handlers"
	"pubhouse-be/internal/logger"
	"pubhouse-be/internal/menu"
	"pubhouse-be/internal/notify"
	"pubhouse-be/internal/order"
	"pubhouse-be/internal/promo"
	"pubhouse-be/internal/session"
	"pubhouse-be/internal/site"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	log := logger.L()

	siteRepo := site.NewRepository(filepath.Join(cfg.DataDir, "site.json"))
	menuRepo := menu.NewRepository(filepath.Join(cfg.DataDir, "menu.json"))
	promoRepo := promo.NewRepository(filepath.Join(cfg.DataDir, "promos.json"))
	orderRepo := order.NewRepository(filepath.Join(cfg.DataDir, "orders.csv"))
	bookingRepo := booking.NewRepository(filepath.Join(cfg.DataDir, "bookings.csv"))
	credsRepo := auth.NewCredentialsRepository(filepath.Join(cfg.DataDir, "admin.json"))

	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second
	var store cart.Store
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisURL, sessionTTL)
		if err != nil {
			log.Fatal("redis session store unavailable", zap.Error(err))
		}
		store = redisStore
		log.Info("using redis session store")
	} else {
		store = session.NewMemoryStore(sessionTTL)
		log.Info("using in-memory session store")
	}

	menuSvc := menu.NewService(menuRepo)
	promoSvc := promo.NewService(promoRepo)
	cartSvc := cart.NewService(store, menuSvc, promoSvc)
	bookingSvc := booking.NewService(bookingRepo)
	authSvc := auth.NewService(credsRepo, cfg.JWTSecret)

	notifier := notify.NewTelegram(siteRepo, cfg.TelegramBotToken, cfg.TelegramChatID)
	checkoutSvc := checkout.NewService(store, promoSvc, siteRepo, orderRepo, notifier)

	router := handlers.SetupRouter(
		handlers.RouterConfig{JWTSecret: cfg.JWTSecret, SessionTTL: cfg.SessionTTL},
		handlers.NewPublicHandler(menuSvc, siteRepo, bookingSvc),
		handlers.NewCartHandler(cartSvc, checkoutSvc),
		handlers.NewAdminHandler(authSvc, siteRepo, menuSvc, promoSvc),
	)

	log.Info("server listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
