package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/go-identity-service/internal/config"
	"github.com/jrsteele09/go-identity-service/server"
	"github.com/jrsteele09/go-identity-service/users"
	"github.com/jrsteele09/go-identity-service/users/postgres"
	fakeuserrepo "github.com/jrsteele09/go-identity-service/users/repofake"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()

	c := config.New()
	initLogger(c)
	displayAppname(c.GetAppName())

	if c.IsProduction() && len(c.GetSigningSecret()) == 0 {
		return errors.New("JWT_SECRET must be set in production")
	}

	ctx := context.Background()
	userRepo, cleanup, err := newUserRepo(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create user store: %w", err)
	}
	defer cleanup()

	srv, err := server.New(c, userRepo)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func newUserRepo(ctx context.Context, c config.Config) (users.Repo, func(), error) {
	databaseURL := c.GetDatabaseURL()
	if databaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory user store")
		return fakeuserrepo.NewFakeUserRepo(), func() {}, nil
	}

	repo, err := postgres.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	return repo, repo.Close, nil
}

func initLogger(c config.Config) {
	if c.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func listenAndServe(server *http.Server) {
	log.Info().Str("addr", server.Addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
