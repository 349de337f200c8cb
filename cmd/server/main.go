package main

import (
	"context"
	"log/slog"
	"os"

	"shareit/app/echoServer"
	bookingctrl "shareit/app/echoServer/controller/booking"
	itemctrl "shareit/app/echoServer/controller/item"
	requestctrl "shareit/app/echoServer/controller/request"
	userctrl "shareit/app/echoServer/controller/user"
	"shareit/config"
	bookingrepo "shareit/repository/booking"
	commentrepo "shareit/repository/comment"
	itemrepo "shareit/repository/item"
	requestrepo "shareit/repository/request"
	userrepo "shareit/repository/user"
	bookingsvc "shareit/service/booking"
	"shareit/service/history"
	itemsvc "shareit/service/item"
	requestsvc "shareit/service/request"
	usersvc "shareit/service/user"
	"shareit/util/database"

	"github.com/labstack/echo/v4"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.LoadServer()

	db, err := database.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("database connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	ir := itemrepo.New(db)
	br := bookingrepo.New(db)
	cr := commentrepo.New(db)
	rr := requestrepo.New(db)

	// view history is process-local and resets on restart
	views := history.New(100)

	// services
	us := usersvc.New(ur, log)
	is := itemsvc.New(ir, ur, rr, br, cr, views, log)
	bs := bookingsvc.New(ur, ir, br, log)
	rs := requestsvc.New(rr, ur, ir, log)

	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)

	echoServer.Register(e, echoServer.C{
		User:    &userctrl.Controller{Svc: us, Log: log},
		Item:    &itemctrl.Controller{Svc: is, Log: log},
		Booking: &bookingctrl.Controller{Svc: bs, Log: log},
		Request: &requestctrl.Controller{Svc: rs, Log: log},
	})

	log.Info("starting shareit server", "port", cfg.ServerPort, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
