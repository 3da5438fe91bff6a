package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type AppConfig struct {
	Port           string        `env:"PORT" env-default:"8080"`
	Env            string        `env:"ENV" env-default:"local"`
	StoreBackend   string        `env:"STORE_BACKEND" env-default:"memory"` // memory|sqlite
	DiagnosisDelay time.Duration `env:"DIAGNOSIS_DELAY" env-default:"2s"`
	CameraEnabled  bool          `env:"CAMERA_ENABLED" env-default:"true"`
	MaxImageBytes  int64         `env:"MAX_IMAGE_BYTES" env-default:"10485760"`
}

func (c AppConfig) Validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendSQLite, c.StoreBackend)
	}
	if c.DiagnosisDelay < 0 {
		return fmt.Errorf("DIAGNOSIS_DELAY must not be negative, got %s", c.DiagnosisDelay)
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("MAX_IMAGE_BYTES must be positive, got %d", c.MaxImageBytes)
	}
	return nil
}

// Load reads an optional .env file, then fills AppConfig from the environment.
func Load(log *zap.Logger) (AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("[cfg] no .env file loaded", zap.Error(err))
	}

	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	log.Info("[cfg] loaded",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.String("store_backend", cfg.StoreBackend),
		zap.Duration("diagnosis_delay", cfg.DiagnosisDelay),
		zap.Bool("camera_enabled", cfg.CameraEnabled),
	)
	return cfg, nil
}
