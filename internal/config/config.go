package config

import (
	"os"
	"strconv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	SessionSecret string
	SiteURL       string
	StoreDriver   string // postgres, memory
	LogLevel      string

	// BidLocking serialises PlaceBid/EndAuction per listing. Off by default.
	BidLocking bool
	// SellerOnlyClose restricts EndAuction to the listing's seller. Off by default.
	SellerOnlyClose bool
}

func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=auctions port=5432 sslmode=disable TimeZone=UTC"),
		SessionSecret:   getEnv("SESSION_SECRET", "secret_key_change_me"),
		SiteURL:         getEnv("SITE_URL", "http://localhost:8080"),
		StoreDriver:     getEnv("STORE_DRIVER", DriverPostgres),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		BidLocking:      getEnvBool("BID_LOCKING", false),
		SellerOnlyClose: getEnvBool("SELLER_ONLY_CLOSE", false),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
