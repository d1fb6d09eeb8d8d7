package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/connectivity"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	"storefront/internal/kv"
	orderrepo "storefront/internal/repository/order"
	authsvc "storefront/internal/service/auth"
	ordersvc "storefront/internal/service/order"
	cartstore "storefront/internal/store/cart"
	"storefront/internal/store/wishlist"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	// Without Redis the stores fall back to process-local storage;
	// state then lives only as long as the process.
	var rdb *redis.Client
	storage := kv.NewMemory()
	if cfg.RedisAddr != "" {
		client, err := db.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("connect redis: %v", err)
		}
		defer client.Close()
		rdb = client
		storage = kv.NewRedis(client)
	} else {
		logger.Printf("REDIS_ADDR not set, using in-memory storage")
	}

	var orderRepo orderrepo.Repository
	if cfg.DBConnString != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		orderRepo = orderrepo.NewPostgres(pool, logger)
	} else {
		logger.Printf("DB_DSN not set, order history disabled")
	}

	authService := authsvc.New()
	orderService := ordersvc.New(orderRepo, cfg.OrderDelay)
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, logger)
	carts := cartstore.NewManager(storage, logger)
	wishlists := wishlist.NewManager(storage, logger)
	network := connectivity.New(true)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, rdb, httpserver.Deps{
		AuthSvc:   authService,
		OrderSvc:  orderService,
		Catalog:   catalogClient,
		Carts:     carts,
		Wishlists: wishlists,
		Network:   network,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
