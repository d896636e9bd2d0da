// Package config loads application configuration from environment variables
// into annotated Go structs, with a one-time `.env` bootstrap and per-type
// caching.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default `.env` file is loaded once per process (missing files are fine),
// then env.Parse populates the struct from field tags. Each configuration
// type is parsed at most once; later calls return the cached copy, so
// packages can load their own config independently without re-reading the
// environment.
//
// # Usage
//
//	type Config struct {
//	    FromEmail     string `env:"OUTREACH_FROM_EMAIL,required"`
//	    MaxVariations int    `env:"OUTREACH_MAX_VARIATIONS" envDefault:"50"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // Handle error
//	}
//
// MustLoad panics on failure, for configuration the process cannot start
// without. Reset clears the cache, which tests use between cases.
package config
