// Package config loads typed configuration structs from environment
// variables (with optional .env file support) using struct tags from
// github.com/caarlos0/env.
package config
