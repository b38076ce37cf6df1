// feriados-sync é o job avulso que sincroniza os feriados do ano com o
// backend. Roda fora do app, agendado por quem operar o sistema (cron
// anual é suficiente).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/admvalente/agenda/internal/config"
	"github.com/admvalente/agenda/internal/feriados"
	"github.com/admvalente/agenda/internal/supabase"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("sincronização encerrada com erro")
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	ano := flag.Int("ano", time.Now().Year(), "ano a sincronizar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	client, err := supabase.New(supabase.Config{URL: cfg.SupabaseURL, AnonKey: cfg.SupabaseAnonKey})
	if err != nil {
		return fmt.Errorf("supabase: %w", err)
	}

	svc := feriados.NewService(feriados.NewBrasilAPI(cfg.BrasilAPIURL), client)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	return svc.Sync(ctx, *ano)
}
