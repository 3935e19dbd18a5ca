package main

import (
	"context"
	"flag"
	api "fuelprice/internal/api/http"
	"fuelprice/internal/controllers"
	"fuelprice/internal/usecasees"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	app.initLogger()

	if err := app.run(confFileName); err != nil {
		app.Logger.Fatal(err)
	}
}

// run wires the service and serves until shutdown. Connections opened here
// are closed before it returns.
func (a *App) run(confFileName string) error {
	if err := a.loadConfig(confFileName); err != nil {
		return err
	}

	a.initLogRus()

	ctx := context.Background()
	defer a.close(ctx)

	if err := a.initLoki(); err != nil {
		return err
	}

	loc, err := a.Config.Location()
	if err != nil {
		return err
	}

	priceRepo, err := a.initStore(ctx)
	if err != nil {
		return err
	}

	a.initHTTPClient()
	a.InitMetrics()

	var tgmController controllers.TgmCtrl
	if a.Config.Telegram != nil {
		if err := a.initTgBot(); err != nil {
			return err
		}

		tgmController = controllers.NewTgmController(a.TGM, a.Config.Telegram.ChatID)
	}

	urls, err := usecasees.NewPageURLs(a.Config.FuelBaseURL)
	if err != nil {
		return err
	}

	clientController := controllers.NewClientController(
		a.HTTPClient,
		a.Logger,
	)

	assembler := usecasees.NewAssembler(
		priceRepo,
		func() time.Time { return time.Now().In(loc) },
	)

	priceUseCase := usecasees.NewPriceUseCase(
		clientController,
		tgmController,
		assembler,
		urls,
		a.Metrics,
		a.Logger,
	)

	if a.Config.ScheduleAllStates != "" {
		scheduleUseCase := usecasees.NewScheduleUseCase(priceUseCase, a.Logger)
		if err := scheduleUseCase.Register(a.Config.ScheduleAllStates); err != nil {
			return err
		}

		scheduleUseCase.Start()
		defer scheduleUseCase.Stop()
	}

	if tgmController != nil {
		tgmUseCase := usecasees.NewTgmUseCase(priceUseCase, tgmController, loc, a.Logger)
		go tgmUseCase.CommandProcessor()
	}

	a.initFiber()
	api.RegisterMiddleware(a.Fiber, a.Config.AppName, a.Logger)
	api.RegisterHTTPEndpoints(a.Fiber, priceUseCase, a.Logger)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		if err := a.Fiber.Shutdown(); err != nil {
			a.Logger.Error(err)
		}
	}()

	a.Logger.WithField("addr", a.Config.HTTPAddr).Info("listening")

	return a.Fiber.Listen(a.Config.HTTPAddr)
}
