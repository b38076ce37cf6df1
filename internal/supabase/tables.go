package supabase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// PerfilByUsuario busca o perfil do atendente pelo id do usuário.
// Ausência de linha devolve ErrNotFound, nunca um erro de backend.
func (c *Client) PerfilByUsuario(ctx context.Context, userID uuid.UUID) (Perfil, error) {
	path := fmt.Sprintf("/rest/v1/atendentes?id_usuario=eq.%s&select=*", userID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return Perfil{}, err
	}

	var rows []Perfil
	if err := c.do(req, &rows); err != nil {
		return Perfil{}, err
	}
	if len(rows) == 0 {
		return Perfil{}, ErrNotFound
	}
	return rows[0], nil
}

// CreatePerfil insere a linha inicial do atendente.
func (c *Client) CreatePerfil(ctx context.Context, perfil Perfil) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/atendentes", perfil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ListPerfis lista todos os atendentes cadastrados.
func (c *Client) ListPerfis(ctx context.Context) ([]Perfil, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/atendentes?select=*", nil)
	if err != nil {
		return nil, err
	}

	var rows []Perfil
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateNivel altera o nível de acesso de um atendente.
func (c *Client) UpdateNivel(ctx context.Context, userID uuid.UUID, nivel NivelAcesso) error {
	if !nivel.Valido() {
		return fmt.Errorf("nível de acesso desconhecido: %q", nivel)
	}

	path := fmt.Sprintf("/rest/v1/atendentes?id_usuario=eq.%s", userID)
	req, err := c.newRequest(ctx, http.MethodPatch, path, map[string]any{
		"nivel_acesso":       nivel,
		"aprovado_por_admin": nivel != NivelAguardando,
	})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// DeletePerfil remove (bloqueia) um atendente.
func (c *Client) DeletePerfil(ctx context.Context, userID uuid.UUID) error {
	path := fmt.Sprintf("/rest/v1/atendentes?id_usuario=eq.%s", userID)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ListEventos busca a lista completa de eventos, na ordem do backend.
func (c *Client) ListEventos(ctx context.Context) ([]Evento, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/eventos?select=*", nil)
	if err != nil {
		return nil, err
	}

	var rows []Evento
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertFeriados grava feriados usando a data como chave de conflito.
func (c *Client) UpsertFeriados(ctx context.Context, feriados []Feriado) error {
	if len(feriados) == 0 {
		return nil
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/feriados?on_conflict=data_feriado", feriados)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates")
	return c.do(req, nil)
}

// ListFeriados busca todos os feriados cadastrados.
func (c *Client) ListFeriados(ctx context.Context) ([]Feriado, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/feriados?select=*", nil)
	if err != nil {
		return nil, err
	}

	var rows []Feriado
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
