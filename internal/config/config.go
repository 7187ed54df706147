package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	DBDSN     string
	RedisAddr string

	// Стоимость создания hire-запроса в connects.
	HireCreationCost int

	RateRPS   int
	RateBurst int

	IdempotencyTTL time.Duration
	DedupeTTL      time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Port:      pick(os.Getenv("PORT"), "8096"),
		DBDSN:     os.Getenv("DB_DSN"),
		RedisAddr: pick(os.Getenv("REDIS_ADDR"), "localhost:6379"),
	}
	if cfg.DBDSN == "" {
		return cfg, errors.New("DB_DSN required")
	}

	cfg.HireCreationCost = pickInt(os.Getenv("HIRE_CREATION_COST"), 50)
	if cfg.HireCreationCost < 0 {
		return cfg, errors.New("HIRE_CREATION_COST must be >= 0")
	}

	cfg.RateRPS = 10
	cfg.RateBurst = 20
	cfg.IdempotencyTTL = time.Hour
	cfg.DedupeTTL = 5 * time.Second
	return cfg, nil
}

func pick(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func pickInt(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
