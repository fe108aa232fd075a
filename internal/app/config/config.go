package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPAddr      string
	DatabaseURL   string
	InternalToken string
	LogLevel      string
	LogFormat     string
}

func MustLoad() Config {
	return Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		DatabaseURL:   mustEnv("DATABASE_URL"),
		InternalToken: mustEnv("INTERNAL_TOKEN"),
		LogLevel:      env("LOG_LEVEL", "info"),
		LogFormat:     env("LOG_FORMAT", "console"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
