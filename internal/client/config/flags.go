package config

import (
	"flag"
	"os"
	"time"

	"github.com/integrasalud/affiliate-client/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string   directory driver (postgres|rest)
//	-dsn string PostgreSQL DSN
//	-u string   PostgREST base URL
//	-p string   identity provider (firebase|kratos)
//	-s string   session backend (sqlite|redis)
//	-f string   SQLite session file
//	-r string   Redis address
//	-t int      request timeout in seconds
//	-l string   log level
//
// Only these flags are read from os.Args; others are ignored.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DirectoryDriver, "d", cfg.DirectoryDriver, "directory driver (postgres|rest)")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.DirectoryURL, "u", cfg.DirectoryURL, "PostgREST base URL")
	fs.StringVar(&cfg.IdentityProvider, "p", cfg.IdentityProvider, "identity provider (firebase|kratos)")
	fs.StringVar(&cfg.SessionBackend, "s", cfg.SessionBackend, "session backend (sqlite|redis)")
	fs.StringVar(&cfg.SessionPath, "f", cfg.SessionPath, "SQLite session file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], flagx.FlagNames(fs))); err != nil {
		panic(err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
