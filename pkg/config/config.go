package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// BankOwnerID is the external identity of the bank owner, fixed at
	// deployment time. Owner privilege is never stored in the database.
	BankOwnerID int64

	// BankInitialBalance seeds the central bank account, applied only the
	// first time the account is created.
	BankInitialBalance decimal.Decimal

	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "30-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. A missing BANK_OWNER_ID is an error: without it no caller could
// ever hold owner privilege.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BANK_OWNER_ID", int64(0))
	viper.SetDefault("BANK_INITIAL_BALANCE", "0")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "solen-bank")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.BankOwnerID = viper.GetInt64("BANK_OWNER_ID")
	if cfg.BankOwnerID == 0 {
		return nil, fmt.Errorf("BANK_OWNER_ID must be set to the owner's telegram id")
	}

	initialBalanceStr := viper.GetString("BANK_INITIAL_BALANCE")
	initialBalance, err := decimal.NewFromString(initialBalanceStr)
	if err != nil || initialBalance.IsNegative() {
		log.Printf("Warning: Invalid value for BANK_INITIAL_BALANCE ('%s'). Defaulting to 0.\n", initialBalanceStr)
		initialBalance = decimal.Zero
	}
	cfg.BankInitialBalance = initialBalance

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	expiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		expiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", expiryStr, expiry)
	}
	cfg.JWTExpiryDuration = expiry

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
