package config

import (
	"flag"
	"os"

	"github.com/localaddons/addons/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-r string   base URL of the registration service
//	-d string   path of the local state database
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.RegistrationURL, "r", cfg.RegistrationURL, "base URL of the registration service")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
