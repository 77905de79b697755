// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// Configuration structs declare their variables through `env` tags from
// github.com/caarlos0/env; defaults and required markers live in the tags:
//
//	type AppConfig struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		ThemeDir string `env:"THEME_DIR"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Load reads the process environment; on the first call it also merges a
// .env file from the working directory if one exists. MustLoad panics on
// failure and is meant for configuration the process cannot run without.
package config
