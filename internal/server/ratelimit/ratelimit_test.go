package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		AnalyzeLimit:  2,
		AnalyzeWindow: time.Hour,
		DefaultLimit:  5,
		DefaultWindow: time.Hour,
	}
}

func TestAllow_WithinLimit(t *testing.T) {
	l := NewLimiter(testConfig())

	first := l.Allow("1.2.3.4", "/analyze")
	assert.True(t, first.Allowed)
	assert.Equal(t, 2, first.Limit)

	second := l.Allow("1.2.3.4", "/analyze")
	assert.True(t, second.Allowed)
}

func TestAllow_ExceedsLimit(t *testing.T) {
	l := NewLimiter(testConfig())

	l.Allow("1.2.3.4", "/analyze")
	l.Allow("1.2.3.4", "/analyze")
	third := l.Allow("1.2.3.4", "/analyze")

	assert.False(t, third.Allowed)
	assert.Equal(t, 0, third.Remaining)
	assert.False(t, third.ResetTime.IsZero())
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())

	l.Allow("1.2.3.4", "/analyze")
	l.Allow("1.2.3.4", "/analyze")
	require.False(t, l.Allow("1.2.3.4", "/analyze").Allowed)

	assert.True(t, l.Allow("5.6.7.8", "/analyze").Allowed)
}

func TestAllow_EndpointClassesAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())

	l.Allow("1.2.3.4", "/analyze")
	l.Allow("1.2.3.4", "/analyze")
	require.False(t, l.Allow("1.2.3.4", "/analyze").Allowed)

	assert.True(t, l.Allow("1.2.3.4", "/roles").Allowed)
}

func TestAllow_HealthNeverLimited(t *testing.T) {
	l := NewLimiter(testConfig())
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("1.2.3.4", "/health").Allowed)
	}
}

func TestAllow_DisabledAllowsEverything(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	l := NewLimiter(cfg)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("1.2.3.4", "/analyze").Allowed)
	}
}

func TestAllow_TokensRefill(t *testing.T) {
	cfg := testConfig()
	cfg.AnalyzeWindow = 20 * time.Millisecond // 2 tokens per 20ms
	l := NewLimiter(cfg)

	l.Allow("1.2.3.4", "/analyze")
	l.Allow("1.2.3.4", "/analyze")
	require.False(t, l.Allow("1.2.3.4", "/analyze").Allowed)

	time.Sleep(30 * time.Millisecond)
	assert.True(t, l.Allow("1.2.3.4", "/analyze").Allowed)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ANALYZE_LIMIT", "7")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "2m")

	cfg := LoadConfig()
	assert.Equal(t, 7, cfg.AnalyzeLimit)
	assert.Equal(t, 2*time.Minute, cfg.DefaultWindow)
}
