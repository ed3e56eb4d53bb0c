// Package config loads environment configuration into tagged structs.
//
// A .env file in the working directory is read once, on first use, if it
// exists. Fields are filled by caarlos0/env from their `env` and `envDefault`
// tags:
//
//	import "github.com/dmitrymomot/choice/core/config"
//
//	var cfg choice.Config // CHOICE_LOCALE, CHOICE_LANGUAGES, CHOICE_PLURAL_SOURCE
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	registry, err := choice.NewFromConfig(cfg)
//
// Structs compose by embedding, which is how the choose CLI adds its logging
// settings on top of the registry ones:
//
//	type Config struct {
//		choice.Config
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg) // panics; for startup code
//
// The first Load for a type parses the environment and caches the result.
// Later calls for the same type return the cached copy even if the
// environment changed in between; distinct types are cached separately.
package config
