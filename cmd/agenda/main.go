package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/admvalente/agenda/internal/app"
	"github.com/admvalente/agenda/internal/cache"
	"github.com/admvalente/agenda/internal/config"
	"github.com/admvalente/agenda/internal/feriados"
	"github.com/admvalente/agenda/internal/supabase"
	"github.com/admvalente/agenda/internal/web"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("agenda encerrada com erro")
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	store, err := cache.New(cfg.CacheDir)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	client, err := supabase.New(supabase.Config{URL: cfg.SupabaseURL, AnonKey: cfg.SupabaseAnonKey})
	if err != nil {
		return fmt.Errorf("supabase: %w", err)
	}

	if token, ok := store.LoadToken(); ok {
		if err := client.RestoreSession(token); err != nil {
			log.Warn().Err(err).Msg("sessão persistida inválida, descartando")
			store.Clear()
		}
	}

	state := app.NewState()
	painel := web.NewPainel()
	roster := app.NewRoster(state, painel, client)
	router := app.NewRouter(state, painel, roster)
	feriadosSvc := feriados.NewService(feriados.NewBrasilAPI(cfg.BrasilAPIURL), client)
	gate := app.NewGate(state, painel, router, roster, client, client, client, feriadosSvc, store)

	ctx := context.Background()

	// Reavalia a sessão persistida antes de servir o primeiro snapshot.
	gate.Start(ctx)
	defer gate.Stop()

	handler := web.NewRouter(cfg, web.Deps{
		State:  state,
		Painel: painel,
		Gate:   gate,
		Router: router,
		Roster: roster,
		Client: client,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("agenda ouvindo em :%d", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("encerrando...")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
