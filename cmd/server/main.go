package main

import (
	"auctions/internal/config"
	"auctions/internal/db"
	"auctions/internal/repository"
	"auctions/internal/router"
	"auctions/internal/services"
	"auctions/internal/utils"
	"fmt"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		utils.Info("No .env file found, reading env vars from system", nil)
	}

	cfg := config.Load()
	utils.SetLogLevel(cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.StoreDriver, "error": err.Error()})
	}

	opts := []services.Option{services.WithSellerOnlyClose(cfg.SellerOnlyClose)}
	if cfg.BidLocking {
		opts = append(opts, services.WithLocker(services.NewKeyedLocker()))
	}
	svc := services.NewAuctionService(store, opts...)

	r := router.New(cfg, svc, store)

	utils.Info("Auctions server starting", map[string]any{
		"port":              cfg.Port,
		"store":             cfg.StoreDriver,
		"bid_locking":       cfg.BidLocking,
		"seller_only_close": cfg.SellerOnlyClose,
	})
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

func openStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		utils.Warn("using in-memory store, data is lost on restart", nil)
		return repository.NewMemoryStore(), nil
	case config.DriverPostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(conn), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
