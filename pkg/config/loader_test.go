package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreachkit/pkg/config"
)

type mailConfig struct {
	FromEmail     string `env:"TEST_OUTREACH_FROM_EMAIL,required"`
	ReplyToEmail  string `env:"TEST_OUTREACH_REPLY_TO_EMAIL"`
	MaxVariations int    `env:"TEST_OUTREACH_MAX_VARIATIONS" envDefault:"50"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_OUTREACH_FROM_EMAIL", "alex@senddomain.io")
	t.Setenv("TEST_OUTREACH_REPLY_TO_EMAIL", "alex@company.com")
	t.Cleanup(config.Reset)
	config.Reset()

	var cfg mailConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "alex@senddomain.io", cfg.FromEmail)
	assert.Equal(t, "alex@company.com", cfg.ReplyToEmail)
	assert.Equal(t, 50, cfg.MaxVariations, "envDefault applies when unset")
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_OUTREACH_FROM_EMAIL", "alex@senddomain.io")
	t.Cleanup(config.Reset)
	config.Reset()

	var first mailConfig
	require.NoError(t, config.Load(&first))

	// Environment changes after the first load are invisible: the cached
	// copy wins.
	t.Setenv("TEST_OUTREACH_FROM_EMAIL", "other@senddomain.io")
	var second mailConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_RequiredMissing(t *testing.T) {
	// t.Setenv registers the restore; unset so "required" actually trips.
	t.Setenv("TEST_OUTREACH_FROM_EMAIL", "")
	require.NoError(t, os.Unsetenv("TEST_OUTREACH_FROM_EMAIL"))
	t.Cleanup(config.Reset)
	config.Reset()

	var cfg mailConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()

	err := config.Load[mailConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	t.Setenv("TEST_OUTREACH_FROM_EMAIL", "")
	require.NoError(t, os.Unsetenv("TEST_OUTREACH_FROM_EMAIL"))
	t.Cleanup(config.Reset)
	config.Reset()

	assert.Panics(t, func() {
		var cfg mailConfig
		config.MustLoad(&cfg)
	})
}
