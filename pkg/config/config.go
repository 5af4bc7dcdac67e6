package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StateBackendMemory = "memory"
	StateBackendRedis  = "redis"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Signal   SignalConfig
	Engine   EngineConfig
	State    StateConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type SignalConfig struct {
	URL               string
	Token             string
	BasicAuthUsername string
	BasicAuthPassword string
	TypeID            int
	Language          int
	Random            string
	Signature         string
	Timeout           time.Duration
	MaxRetries        int
	BackoffBase       time.Duration
	RateLimit         float64
	RateBurst         int
}

type EngineConfig struct {
	// optional YAML file overriding the engine weights
	ConfigFile string
}

type StateConfig struct {
	Backend string
	TTL     time.Duration
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	PoolSize      int
	DialTimeout   time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Prediction Bot"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Signal: SignalConfig{
			URL:               getEnv("SIGNAL_API_URL", "https://api.51gameapi.com/api/webapi/GetEmerdList"),
			Token:             getEnv("SIGNAL_API_TOKEN", ""),
			BasicAuthUsername: getEnv("SIGNAL_API_BASIC_AUTH_USERNAME", ""),
			BasicAuthPassword: getEnv("SIGNAL_API_BASIC_AUTH_PASSWORD", ""),
			Random:            getEnv("SIGNAL_API_RANDOM", ""),
			Signature:         getEnv("SIGNAL_API_SIGNATURE", ""),
		},
		Engine: EngineConfig{
			ConfigFile: getEnv("ENGINE_CONFIG_FILE", ""),
		},
		State: StateConfig{
			Backend: getEnv("STATE_BACKEND", StateBackendMemory),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "prediction_bot"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
		},
	}

	var err error
	if cfg.Signal.TypeID, err = getEnvInt("SIGNAL_API_TYPE_ID", 1); err != nil {
		return nil, err
	}
	if cfg.Signal.Language, err = getEnvInt("SIGNAL_API_LANGUAGE", 0); err != nil {
		return nil, err
	}
	if cfg.Signal.Timeout, err = getEnvDuration("SIGNAL_API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Signal.MaxRetries, err = getEnvInt("SIGNAL_API_MAX_RETRIES", 1); err != nil {
		return nil, err
	}
	if cfg.Signal.BackoffBase, err = getEnvDuration("SIGNAL_API_BACKOFF", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.Signal.RateBurst, err = getEnvInt("SIGNAL_API_RATE_BURST", 1); err != nil {
		return nil, err
	}
	if cfg.Signal.RateLimit, err = getEnvFloat("SIGNAL_API_RATE_LIMIT", 2); err != nil {
		return nil, err
	}
	if cfg.State.TTL, err = getEnvDuration("STATE_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, errors.New("invalid redis database")
	}
	if cfg.Redis.PoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Redis.DialTimeout, err = getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.Database.Enabled, err = getEnvBool("EVENT_LOG_ENABLED", false); err != nil {
		return nil, err
	}

	if cfg.Signal.URL == "" {
		return nil, errors.New("missing signal api url")
	}

	if cfg.State.Backend != StateBackendMemory && cfg.State.Backend != StateBackendRedis {
		return nil, fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}

	if cfg.Database.Enabled && cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
