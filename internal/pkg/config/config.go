package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (policy knobs, timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Loyalty      LoyaltyConfig
	Tier         TierConfig
	Collaborator CollaboratorConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// LoyaltyConfig carries the booking-lifecycle and points-ledger policy knobs.
// Defaults match the hotel programme's published terms.
type LoyaltyConfig struct {
	FreeCancellationHours int           `envconfig:"LOYALTY_FREE_CANCELLATION_HOURS" default:"48"`
	LateCancellationHours int           `envconfig:"LOYALTY_LATE_CANCELLATION_HOURS" default:"12"`
	CompletionBonusCap    int64         `envconfig:"LOYALTY_COMPLETION_BONUS_CAP" default:"200"`
	PointsPerDollar       int64         `envconfig:"LOYALTY_POINTS_PER_DOLLAR" default:"100"`
	ScopeTimeout          time.Duration `envconfig:"LOYALTY_SCOPE_TIMEOUT" default:"5s"`
}

// TierConfig holds the lifetime-point thresholds and earn multipliers per tier.
// Immutable at runtime; loaded once at startup.
type TierConfig struct {
	SilverThreshold    int64   `envconfig:"TIER_SILVER_THRESHOLD" default:"2500"`
	GoldThreshold      int64   `envconfig:"TIER_GOLD_THRESHOLD" default:"10000"`
	PlatinumThreshold  int64   `envconfig:"TIER_PLATINUM_THRESHOLD" default:"30000"`
	BronzeMultiplier   float64 `envconfig:"TIER_BRONZE_MULTIPLIER" default:"1.0"`
	SilverMultiplier   float64 `envconfig:"TIER_SILVER_MULTIPLIER" default:"1.25"`
	GoldMultiplier     float64 `envconfig:"TIER_GOLD_MULTIPLIER" default:"1.5"`
	PlatinumMultiplier float64 `envconfig:"TIER_PLATINUM_MULTIPLIER" default:"2.0"`
}

type CollaboratorConfig struct {
	PricingBaseURL     string        `envconfig:"PRICING_BASE_URL" required:"true"`
	EligibilityBaseURL string        `envconfig:"ELIGIBILITY_BASE_URL" required:"true"`
	InventoryBaseURL   string        `envconfig:"INVENTORY_BASE_URL" required:"true"`
	RequestTimeout     time.Duration `envconfig:"COLLABORATOR_TIMEOUT" default:"3s"`
	MaxRetries         int           `envconfig:"COLLABORATOR_MAX_RETRIES" default:"3"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Loyalty: LoyaltyConfig{
			FreeCancellationHours: 48,
			LateCancellationHours: 12,
			CompletionBonusCap:    200,
			PointsPerDollar:       100,
			ScopeTimeout:          5 * time.Second,
		},
		Tier: TierConfig{
			SilverThreshold:    2500,
			GoldThreshold:      10000,
			PlatinumThreshold:  30000,
			BronzeMultiplier:   1.0,
			SilverMultiplier:   1.25,
			GoldMultiplier:     1.5,
			PlatinumMultiplier: 2.0,
		},
	}
}
