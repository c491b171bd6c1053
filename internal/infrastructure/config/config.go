package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SessionStoreMemory   = "memory"
	SessionStoreDynamoDB = "dynamodb"
	SessionStoreRedis    = "redis"
)

// Config holds every setting of the service. Values come from the
// environment, optionally seeded by an app.env file.
type Config struct {
	Port int `mapstructure:"PORT"`

	SkipsAPIBaseURL string        `mapstructure:"SKIPS_API_BASE_URL"`
	SkipsAPITimeout time.Duration `mapstructure:"SKIPS_API_TIMEOUT"`
	Postcode        string        `mapstructure:"SKIPS_POSTCODE"`
	Area            string        `mapstructure:"SKIPS_AREA"`

	WasteType        string `mapstructure:"WASTE_TYPE"`
	WasteDescription string `mapstructure:"WASTE_DESCRIPTION"`

	SessionStore  string        `mapstructure:"SESSION_STORE"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	SessionsTable string        `mapstructure:"SESSIONS_TABLE"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	RedisURL string `mapstructure:"REDIS_URL"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var defaults = map[string]any{
	"PORT":                  8080,
	"SKIPS_API_BASE_URL":    "https://app.wewantwaste.co.uk",
	"SKIPS_API_TIMEOUT":     "10s",
	"SKIPS_POSTCODE":        "NR32",
	"SKIPS_AREA":            "Lowestoft",
	"WASTE_TYPE":            "Garden Waste",
	"WASTE_DESCRIPTION":     "Green waste and landscaping materials",
	"SESSION_STORE":         SessionStoreMemory,
	"SESSION_TTL":           "30m",
	"SESSIONS_TABLE":        "skip_sessions",
	"AWS_REGION":            "us-east-1",
	"AWS_ACCESS_KEY_ID":     "local",
	"AWS_SECRET_ACCESS_KEY": "local",
	"DYNAMODB_ENDPOINT":     "",
	"REDIS_URL":             "redis://localhost:6379/0",
	"CORS_ALLOWED_ORIGINS":  "*",
}

// Load reads app.env from path when present and lets environment variables
// override it.
func Load(path string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigName("app")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.SessionStore = strings.ToLower(strings.TrimSpace(cfg.SessionStore))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreDynamoDB, SessionStoreRedis:
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}
	if c.Port <= 0 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.SkipsAPITimeout <= 0 {
		return errors.New("SKIPS_API_TIMEOUT must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
