package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadServer reads backend configuration from the environment.
// A .env file, when present, seeds missing variables.
func LoadServer() App {
	_ = godotenv.Load()
	cfg := load()
	cfg.DatabaseURL = must("DATABASE_URL")
	return cfg
}

// LoadGateway reads gateway configuration; the gateway has no
// database and only needs the backend URL.
func LoadGateway() App {
	_ = godotenv.Load()
	return load()
}

func load() App {
	return App{
		ServerPort:  getenv("SERVER_PORT", "9090"),
		GatewayPort: getenv("GATEWAY_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ServerURL:   getenv("SHAREIT_SERVER_URL", "http://localhost:9090"),
		Env:         getenv("APP_ENV", "dev"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
