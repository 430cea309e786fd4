// Package config loads typed configuration structs from environment
// variables using caarlos0/env struct tags, with optional .env file
// support via godotenv. Each struct type is parsed once per process and
// cached, so repeated Load calls across components are cheap and
// consistent.
package config
