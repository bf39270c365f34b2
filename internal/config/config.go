package config

import (
	"flag"
	"time"

	"github.com/0x24CaptainParrot/splitpay-service/internal/split"
	"github.com/caarlos0/env"
	"go.uber.org/zap"
)

type Config struct {
	RunAddr         string        `env:"RUN_ADDRESS"`
	DBUri           string        `env:"DATABASE_URI"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	LogLevel        string        `env:"LOG_LEVEL"`
	JWTSecret       string        `env:"JWT_SECRET"`
	SessionTTL      time.Duration `env:"SESSION_TTL"`
	Currency        string        `env:"CURRENCY"`
	Locale          string        `env:"LOCALE"`
	MethodPrefix    string        `env:"SPLIT_METHOD_PREFIX"`
	SplitMethodCode string        `env:"SPLIT_METHOD_CODE"`
	NotifyChannel   string        `env:"NOTIFY_CHANNEL"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR"`
}

// Parse reads flags from args, then lets environment variables override them.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var cfg Config
	fs.StringVar(&cfg.RunAddr, "a", "localhost:8080", "run address")
	fs.StringVar(&cfg.DBUri, "d", "", "database uri")
	fs.StringVar(&cfg.RedisAddr, "r", "localhost:6379", "redis address")
	fs.StringVar(&cfg.LogLevel, "l", "info", "log level")
	fs.StringVar(&cfg.JWTSecret, "s", "splitpay-dev-secret", "session token signing key")
	fs.DurationVar(&cfg.SessionTTL, "t", 2*time.Hour, "checkout session lifetime")
	fs.StringVar(&cfg.Currency, "c", "USD", "ISO 4217 currency code")
	fs.StringVar(&cfg.Locale, "locale", "en-US", "locale for currency formatting")
	fs.StringVar(&cfg.MethodPrefix, "prefix", split.DefaultMethodPrefix, "payment method code prefix eligible for split payments")
	fs.StringVar(&cfg.SplitMethodCode, "split-code", split.SplitMethodCode, "split payment method code")
	fs.StringVar(&cfg.NotifyChannel, "n", "split_payment_saved", "postgres channel notified on saved payments")
	fs.StringVar(&cfg.MigrationsDir, "m", "internal/pkg/repository/schema", "migrations directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Filter() split.Filter {
	return split.Filter{Prefix: c.MethodPrefix, ExcludedCode: c.SplitMethodCode}
}

func (c *Config) Log(l *zap.Logger) {
	l.Info("Running with",
		zap.String("run_addr", c.RunAddr),
		zap.String("redis_addr", c.RedisAddr),
		zap.Duration("session_ttl", c.SessionTTL),
		zap.String("currency", c.Currency),
		zap.String("locale", c.Locale),
		zap.String("method_prefix", c.MethodPrefix),
		zap.String("split_method_code", c.SplitMethodCode))
}
