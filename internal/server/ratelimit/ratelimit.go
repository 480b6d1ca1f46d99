// Package ratelimit provides per-client rate limiting using a token
// bucket algorithm.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiting configuration. Analysis requests are far
// more expensive than metadata reads, so they get their own tighter
// bucket.
type Config struct {
	Enabled bool
	// AnalyzeLimit is the sustained analyze-requests-per-window allowance.
	AnalyzeLimit  int
	AnalyzeWindow time.Duration
	// DefaultLimit covers all other endpoints.
	DefaultLimit  int
	DefaultWindow time.Duration
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Enabled:       getEnvBool("RATE_LIMIT_ENABLED", true),
		AnalyzeLimit:  getEnvInt("RATE_LIMIT_ANALYZE_LIMIT", 30),
		AnalyzeWindow: getEnvDuration("RATE_LIMIT_ANALYZE_WINDOW", time.Minute),
		DefaultLimit:  getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow: getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
	}
}

// Info reports the outcome of a rate limit check.
type Info struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime time.Time
}

// tokenBucket refills at a steady rate up to its capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func (tb *tokenBucket) refill(now time.Time) {
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now
}

// Limiter manages token buckets keyed by client and endpoint class.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	config  *Config
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	return &Limiter{
		buckets: make(map[string]*tokenBucket),
		config:  config,
	}
}

// Allow consumes one token for the client on the given path, reporting
// whether the request may proceed. Health checks are never limited.
func (l *Limiter) Allow(clientID, path string) Info {
	if !l.config.Enabled || path == "/health" {
		return Info{Allowed: true}
	}

	limit := l.config.DefaultLimit
	window := l.config.DefaultWindow
	if path == "/analyze" {
		limit = l.config.AnalyzeLimit
		window = l.config.AnalyzeWindow
	}

	key := clientID + "|" + path
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	tb, ok := l.buckets[key]
	if !ok {
		tb = &tokenBucket{
			capacity:   limit,
			refillRate: float64(limit) / window.Seconds(),
			tokens:     float64(limit),
			lastRefill: now,
		}
		l.buckets[key] = tb
	}

	tb.refill(now)

	info := Info{Limit: limit}
	if tb.tokens >= 1.0 {
		tb.tokens--
		info.Allowed = true
	}
	info.Remaining = int(tb.tokens)

	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		info.ResetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		info.ResetTime = now
	}
	return info
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
