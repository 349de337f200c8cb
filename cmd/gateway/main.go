package main

import (
	"log/slog"
	"os"

	"shareit/app/echoServer"
	"shareit/app/gateway"
	"shareit/app/gateway/client"
	"shareit/app/gateway/validation"
	"shareit/config"

	"github.com/labstack/echo/v4"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.LoadGateway()

	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	cli := client.New(cfg.ServerURL, log)
	gateway.Register(e, &gateway.Handlers{Cli: cli, Log: log})

	log.Info("starting shareit gateway", "port", cfg.GatewayPort, "server", cfg.ServerURL)
	e.Logger.Fatal(e.Start(":" + cfg.GatewayPort))
}
