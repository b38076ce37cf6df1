// Package feriados sincroniza feriados nacionais e estaduais com o
// backend e expõe o mapa data→nome usado pelo calendário. A
// sincronização roda como job independente, fora da partida do app.
package feriados

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/admvalente/agenda/internal/supabase"
)

const (
	TipoNacional = "Nacional"
	TipoEstadual = "Estadual"
)

// Fonte fornece os feriados nacionais de um ano.
type Fonte interface {
	Nacionais(ctx context.Context, ano int) ([]supabase.Feriado, error)
}

// Store é o subconjunto do backend usado pelo serviço.
type Store interface {
	UpsertFeriados(ctx context.Context, feriados []supabase.Feriado) error
	ListFeriados(ctx context.Context) ([]supabase.Feriado, error)
}

// Service orquestra a sincronização e a leitura de feriados.
type Service struct {
	fonte Fonte
	store Store
}

// NewService cria o serviço com a fonte e o backend informados.
func NewService(fonte Fonte, store Store) *Service {
	return &Service{fonte: fonte, store: store}
}

// Estaduais devolve os feriados fixos do estado da Bahia para o ano.
func Estaduais(ano int) []supabase.Feriado {
	return []supabase.Feriado{
		{
			DataFeriado: fmt.Sprintf("%d-07-02", ano),
			NomeFeriado: "Independência da Bahia",
			TipoFeriado: TipoEstadual,
		},
		{
			DataFeriado: fmt.Sprintf("%d-12-08", ano),
			NomeFeriado: "Nossa Sra. da Conceição da Praia",
			TipoFeriado: TipoEstadual,
		},
	}
}

// Sync busca os feriados nacionais do ano, acrescenta os estaduais e
// grava tudo usando a data como chave de conflito.
func (s *Service) Sync(ctx context.Context, ano int) error {
	nacionais, err := s.fonte.Nacionais(ctx, ano)
	if err != nil {
		return fmt.Errorf("feriados nacionais: %w", err)
	}
	log.Info().Int("ano", ano).Int("nacionais", len(nacionais)).Msg("feriados nacionais carregados")

	todos := append(nacionais, Estaduais(ano)...)

	if err := s.store.UpsertFeriados(ctx, todos); err != nil {
		return fmt.Errorf("upsert feriados: %w", err)
	}
	log.Info().Int("total", len(todos)).Msg("sincronização de feriados concluída")
	return nil
}

// Map devolve os feriados cadastrados como mapa data→nome.
func (s *Service) Map(ctx context.Context) (map[string]string, error) {
	feriados, err := s.store.ListFeriados(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar feriados: %w", err)
	}

	mapa := make(map[string]string, len(feriados))
	for _, f := range feriados {
		mapa[f.DataFeriado] = f.NomeFeriado
	}
	return mapa, nil
}
