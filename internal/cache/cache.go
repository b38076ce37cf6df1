// Package cache guarda o estado local persistente do app: o último
// perfil conhecido e o token da sessão. É o equivalente ao
// localStorage da versão web, invalidado por inteiro no logout.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/admvalente/agenda/internal/supabase"
)

const (
	arquivoPerfil = "perfil.json"
	arquivoSessao = "sessao.json"
)

// Store lê e grava entradas JSON sob um diretório fixo.
type Store struct {
	dir string
}

// New garante o diretório de cache e devolve o store.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cache: diretório vazio")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Store{dir: dir}, nil
}

// SavePerfil grava o perfil como última cópia conhecida.
func (s *Store) SavePerfil(perfil supabase.Perfil) error {
	return s.write(arquivoPerfil, perfil)
}

// LoadPerfil devolve o perfil em cache, se houver um legível.
// Arquivo corrompido é descartado em vez de propagar erro.
func (s *Store) LoadPerfil() (*supabase.Perfil, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, arquivoPerfil))
	if err != nil {
		return nil, false
	}

	var perfil supabase.Perfil
	if err := json.Unmarshal(data, &perfil); err != nil {
		log.Warn().Err(err).Msg("perfil em cache corrompido, descartando")
		s.RemovePerfil()
		return nil, false
	}
	return &perfil, true
}

// RemovePerfil apaga a entrada de perfil, se existir.
func (s *Store) RemovePerfil() {
	_ = os.Remove(filepath.Join(s.dir, arquivoPerfil))
}

// SaveToken persiste o access token da sessão corrente.
func (s *Store) SaveToken(token string) error {
	return s.write(arquivoSessao, map[string]string{"access_token": token})
}

// LoadToken devolve o token persistido, se houver.
func (s *Store) LoadToken() (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, arquivoSessao))
	if err != nil {
		return "", false
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.AccessToken == "" {
		return "", false
	}
	return payload.AccessToken, true
}

// Clear remove todas as entradas de uma vez.
func (s *Store) Clear() {
	_ = os.Remove(filepath.Join(s.dir, arquivoPerfil))
	_ = os.Remove(filepath.Join(s.dir, arquivoSessao))
}

// write grava via arquivo temporário e rename, evitando entradas
// truncadas se o processo morrer no meio da escrita.
func (s *Store) write(nome string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := filepath.Join(s.dir, nome+".tmp")
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(s.dir, nome))
}
