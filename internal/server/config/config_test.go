package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Empty(t, cfg.DatabaseDSN)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9000")
	t.Setenv("DATABASE_DSN", "user:pass@tcp(127.0.0.1:3306)/addons?parseTime=true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "user:pass@tcp(127.0.0.1:3306)/addons?parseTime=true", cfg.DatabaseDSN)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd", "-a", ":7000", "-d", "dsn-from-flag"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "dsn-from-flag", cfg.DatabaseDSN)
}

func TestFlagsOverrideEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("ADDRESS", ":9000")
	os.Args = []string{"cmd", "-a", ":7000"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)

	assert.Equal(t, ":7000", cfg.Addr)
}
