package config

type App struct {
	ServerPort  string `env:"SERVER_PORT" default:"9090"`
	GatewayPort string `env:"GATEWAY_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerURL   string `env:"SHAREIT_SERVER_URL" default:"http://localhost:9090"`
	Env         string `env:"APP_ENV" default:"dev"`
}
