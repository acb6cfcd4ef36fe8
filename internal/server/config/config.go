// Package config loads the registration service settings. Precedence:
// defaults, then a .env file / environment variables, then command-line
// flags.
package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/localaddons/addons/internal/flagx"
)

type Config struct {
	// Addr is the listen address, host:port.
	Addr string
	// DatabaseDSN is the MySQL DSN, e.g.
	// "user:pass@tcp(127.0.0.1:3306)/addons?parseTime=true".
	DatabaseDSN string
}

func (c *Config) LoadDefaults() {
	c.Addr = ":8081"
	c.DatabaseDSN = ""
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
}

func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("regserver", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "MySQL DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
