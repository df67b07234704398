package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/neexbeast/holiday-tracker/internal/holiday"
)

// Defaults
const (
	DefaultYears       = "2023,2024,2025"
	DefaultCountry     = "TR"
	DefaultConcurrency = 1
	DefaultCacheTTL    = 24 * time.Hour
)

// Config holds environment-based settings. Every variable is optional.
type Config struct {
	Years            []int
	Country          string
	APIBaseURL       string
	FetchConcurrency int
	RedisURL         string
	CacheTTL         time.Duration
	LogLevel         string
	LogFormat        string
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv, which lets tests supply a map.
func LoadFrom(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	years, err := parseYears(get("HOLIDAY_YEARS", DefaultYears))
	if err != nil {
		return nil, fmt.Errorf("HOLIDAY_YEARS: %w", err)
	}

	country := strings.ToUpper(get("HOLIDAY_COUNTRY", DefaultCountry))
	if len(country) != 2 {
		return nil, fmt.Errorf("HOLIDAY_COUNTRY: %q is not a two-letter country code", country)
	}

	concurrency, err := strconv.Atoi(get("FETCH_CONCURRENCY", strconv.Itoa(DefaultConcurrency)))
	if err != nil || concurrency < 1 {
		return nil, fmt.Errorf("FETCH_CONCURRENCY: must be a positive integer")
	}

	ttl, err := time.ParseDuration(get("CACHE_TTL", DefaultCacheTTL.String()))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("CACHE_TTL: must be positive")
	}

	return &Config{
		Years:            years,
		Country:          country,
		APIBaseURL:       get("HOLIDAY_API_URL", holiday.DefaultBaseURL),
		FetchConcurrency: concurrency,
		RedisURL:         get("REDIS_URL", ""),
		CacheTTL:         ttl,
		LogLevel:         get("LOG_LEVEL", "info"),
		LogFormat:        get("LOG_FORMAT", "text"),
	}, nil
}

// parseYears parses a comma separated year list, dropping duplicates while
// keeping the first occurrence order.
func parseYears(s string) ([]int, error) {
	var years []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", part)
		}
		if y < 1 || y > 9999 {
			return nil, fmt.Errorf("year %d out of range", y)
		}
		if seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("no years given")
	}
	return years, nil
}
