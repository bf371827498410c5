package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, provider credentials, secrets)
// - default: Values common across all environments (timezone, timeouts, TTLs)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Provider  ProviderConfig
	Redis     RedisConfig
	Wizard    WizardConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type ProviderConfig struct {
	APIKey            string        `envconfig:"CAL_COM_API_KEY" required:"true"`
	Username          string        `envconfig:"CAL_COM_USERNAME" default:""`
	BaseURL           string        `envconfig:"CAL_COM_BASE_URL" default:"https://api.cal.com/v1"`
	Timeout           time.Duration `envconfig:"CAL_COM_TIMEOUT" default:"15s"`
	BusinessTimeZone  string        `envconfig:"BUSINESS_TIMEZONE" default:"Europe/Athens"`
	GroupHorizonDays  int           `envconfig:"GROUP_SLOT_HORIZON_DAYS" default:"60"`
	BookingLanguage   string        `envconfig:"BOOKING_LANGUAGE" default:"en"`
	OutboundPerSecond float64       `envconfig:"CAL_COM_RATE_PER_SECOND" default:"10"`
}

type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password       string        `envconfig:"REDIS_PASSWORD" default:""`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	CatalogTTL     time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
	// ClaimTTL bounds how long an unfinished request holds its key.
	ClaimTTL time.Duration `envconfig:"IDEMPOTENCY_CLAIM_TTL" default:"2m"`
}

type WizardConfig struct {
	SessionTTL  time.Duration `envconfig:"WIZARD_SESSION_TTL" default:"30m"`
	SuccessHold time.Duration `envconfig:"WIZARD_SUCCESS_HOLD" default:"3s"`
	// SubmitTimeout releases a submission lock whose outcome was never recorded.
	SubmitTimeout time.Duration `envconfig:"WIZARD_SUBMIT_TIMEOUT" default:"2m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Europe/Athens"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	// Duration bounds how long a wizard link stays usable; the session
	// itself expires after WIZARD_SESSION_TTL of inactivity.
	Duration time.Duration `envconfig:"JWT_DURATION" default:"2h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

// Location resolves the business time zone, falling back to a fixed
// UTC+2 zone when the tz database is unavailable.
func (c ProviderConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimeZone)
	if err != nil {
		return time.FixedZone(c.BusinessTimeZone, 2*60*60)
	}
	return loc
}

func LoadConfig() (Config, error) {
	// a missing .env is fine; the process environment still applies
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Validate reports every setting that would break the booking flow at once.
func (c Config) Validate() error {
	var problems []string
	if _, err := time.LoadLocation(c.Provider.BusinessTimeZone); err != nil {
		problems = append(problems, fmt.Sprintf("BUSINESS_TIMEZONE %q is not a known zone", c.Provider.BusinessTimeZone))
	}
	if c.Provider.Timeout <= 0 {
		problems = append(problems, "CAL_COM_TIMEOUT must be positive")
	}
	if c.Provider.GroupHorizonDays <= 0 {
		problems = append(problems, "GROUP_SLOT_HORIZON_DAYS must be positive")
	}
	if c.Wizard.SessionTTL <= 0 {
		problems = append(problems, "WIZARD_SESSION_TTL must be positive")
	}
	if c.Wizard.SuccessHold < 0 {
		problems = append(problems, "WIZARD_SUCCESS_HOLD must not be negative")
	}
	if c.Wizard.SubmitTimeout <= c.Provider.Timeout {
		problems = append(problems, "WIZARD_SUBMIT_TIMEOUT must exceed CAL_COM_TIMEOUT")
	}
	if c.Redis.ClaimTTL <= c.Provider.Timeout {
		problems = append(problems, "IDEMPOTENCY_CLAIM_TTL must exceed CAL_COM_TIMEOUT")
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst < 1 {
		problems = append(problems, "RATE_LIMIT_BURST must be at least 1 when rate limiting is on")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Provider: ProviderConfig{
			APIKey:            "test-api-key",
			BaseURL:           "http://localhost:18080",
			Timeout:           5 * time.Second,
			BusinessTimeZone:  "Europe/Athens",
			GroupHorizonDays:  60,
			BookingLanguage:   "en",
			OutboundPerSecond: 1000,
		},
		Redis: RedisConfig{
			Addr:           "localhost:16379", // Test Redis port
			CatalogTTL:     time.Minute,
			IdempotencyTTL: time.Hour,
			ClaimTTL:       time.Minute,
		},
		Wizard: WizardConfig{
			SessionTTL:    10 * time.Minute,
			SuccessHold:   time.Second,
			SubmitTimeout: time.Minute,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Europe/Athens",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: 30 * time.Minute,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}
}
