package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Simulation SimulationConfig
	NATS       NATSConfig
	Redis      RedisConfig
	Security   SecurityConfig
	API        APIConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type SimulationConfig struct {
	TickInterval       time.Duration
	HistoryCapacity    int
	AnomalyNumerator   int
	AnomalyDenominator int
	// RandomSeed задает seed генератора; 0 — seed от текущего времени
	RandomSeed int64
}

type NATSConfig struct {
	Enabled bool
	URL     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type SecurityConfig struct {
	AllowedOrigins []string
	AuthEnabled    bool
	AuthToken      string
}

type APIConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	tickInterval, err := time.ParseDuration(getEnv("SIM_TICK_INTERVAL", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIM_TICK_INTERVAL: %w", err)
	}

	historyCapacity, err := strconv.Atoi(getEnv("SIM_HISTORY_CAPACITY", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIM_HISTORY_CAPACITY: %w", err)
	}

	anomalyNumerator, err := strconv.Atoi(getEnv("SIM_ANOMALY_NUMERATOR", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIM_ANOMALY_NUMERATOR: %w", err)
	}

	anomalyDenominator, err := strconv.Atoi(getEnv("SIM_ANOMALY_DENOMINATOR", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIM_ANOMALY_DENOMINATOR: %w", err)
	}

	randomSeed, err := strconv.ParseInt(getEnv("SIM_RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SIM_RANDOM_SEED: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnv("REDIS_SNAPSHOT_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_SNAPSHOT_TTL: %w", err)
	}

	rateLimitRPS, err := strconv.ParseFloat(getEnv("API_RATE_LIMIT_RPS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT_RPS: %w", err)
	}

	rateLimitBurst, err := strconv.Atoi(getEnv("API_RATE_LIMIT_BURST", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT_BURST: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Simulation: SimulationConfig{
			TickInterval:       tickInterval,
			HistoryCapacity:    historyCapacity,
			AnomalyNumerator:   anomalyNumerator,
			AnomalyDenominator: anomalyDenominator,
			RandomSeed:         randomSeed,
		},
		NATS: NATSConfig{
			Enabled: getEnvBool("NATS_ENABLED", false),
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			TTL:      redisTTL,
		},
		Security: SecurityConfig{
			AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")),
			AuthEnabled:    getEnvBool("AUTH_ENABLED", false),
			AuthToken:      getEnv("AUTH_BEARER_TOKEN", ""),
		},
		API: APIConfig{
			RateLimitRPS:   rateLimitRPS,
			RateLimitBurst: rateLimitBurst,
		},
	}

	// Ошибки конфигурации отклоняются здесь, а не в середине работы
	if cfg.Simulation.TickInterval <= 0 {
		return nil, fmt.Errorf("SIM_TICK_INTERVAL must be positive")
	}
	if cfg.Simulation.HistoryCapacity <= 0 {
		return nil, fmt.Errorf("SIM_HISTORY_CAPACITY must be positive")
	}
	if cfg.Simulation.AnomalyDenominator <= 0 {
		return nil, fmt.Errorf("SIM_ANOMALY_DENOMINATOR must be positive")
	}
	if cfg.Simulation.AnomalyNumerator < 0 || cfg.Simulation.AnomalyNumerator > cfg.Simulation.AnomalyDenominator {
		return nil, fmt.Errorf("SIM_ANOMALY_NUMERATOR must be within [0, SIM_ANOMALY_DENOMINATOR]")
	}
	if cfg.Security.AuthEnabled && cfg.Security.AuthToken == "" {
		return nil, fmt.Errorf("AUTH_BEARER_TOKEN is required when AUTH_ENABLED=true")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}

func splitCSV(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
