// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env struct tags.
//
// Load parses each configuration type once per process and caches it; the
// default .env file is read first when present (github.com/joho/godotenv).
// Parse skips the cache and accepts options, which keeps tests independent of
// the process environment:
//
//	type Config struct {
//		AppName string `env:"APP_NAME" envDefault:"regform"`
//		Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
//	cfg, err := config.Parse[Config](config.WithEnvironment(map[string]string{
//		"HTTP_ADDR": ":9090",
//	}))
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer.
package config
