package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"clash-arena/internal/model"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Worker   WorkerConfig
	Payment  PaymentConfig
	Gateway  GatewayConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"clash_arena"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}
type WorkerConfig struct {
	// SweepInterval drives the payment/coupon/invitation expiry sweeps.
	SweepInterval time.Duration `env:"WORKER_SWEEP_INTERVAL" envDefault:"1m"`
	// VerifyInterval drives the gateway verification poll.
	VerifyInterval time.Duration `env:"WORKER_VERIFY_INTERVAL" envDefault:"30s"`
}
type PaymentConfig struct {
	Expiry        time.Duration `env:"PAYMENT_EXPIRY" envDefault:"15m"`
	WithdrawalFee string        `env:"WITHDRAWAL_FEE" envDefault:"1000"`
	MinWithdrawal string        `env:"MIN_WITHDRAWAL" envDefault:"10000"`
}

// GatewayConfig is a tagged union: Kind selects the active provider and which
// of the per-kind sections applies.
type GatewayConfig struct {
	Kind    string        `env:"GATEWAY_KIND" envDefault:"sandbox"`
	Sandbox SandboxConfig `envPrefix:"GATEWAY_SANDBOX_"`
	Bank    BankConfig    `envPrefix:"GATEWAY_BANK_"`
}

type SandboxConfig struct {
	// FailEvery makes every Nth verification fail; zero disables.
	FailEvery int `env:"FAIL_EVERY" envDefault:"0"`
}

type BankConfig struct {
	MerchantID  string `env:"MERCHANT_ID"`
	APIKey      string `env:"API_KEY"`
	CallbackURL string `env:"CALLBACK_URL"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := model.ParseGatewayKind(cfg.Gateway.Kind); err != nil {
		return nil, fmt.Errorf("invalid GATEWAY_KIND %q: %w", cfg.Gateway.Kind, err)
	}
	return cfg, nil
}
