package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000/api", cfg.APIBaseURL)
	assert.Equal(t, "http://127.0.0.1:8081", cfg.RegistrationURL)
	assert.Equal(t, "addons.db", cfg.DatabasePath)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd", "-a", "http://api.example/api", "-r", "http://reg.example", "-d", "custom.db"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, "http://api.example/api", cfg.APIBaseURL)
	assert.Equal(t, "http://reg.example", cfg.RegistrationURL)
	assert.Equal(t, "custom.db", cfg.DatabasePath)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-z", "whatever", "-a", "http://api.example/api"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, "http://api.example/api", cfg.APIBaseURL)
}
