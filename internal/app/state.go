// Package app contém as máquinas de estado da interface: o roteador de
// páginas, o portão de sessão e a gestão de usuários. Nenhum componente
// toca DOM; tudo é descrito por view models e aplicado em um Surface
// injetado na construção.
package app

import (
	"sync"

	"github.com/admvalente/agenda/internal/supabase"
	"github.com/admvalente/agenda/internal/view"
)

// State é o contêiner único de estado compartilhado do app.
// Substitui o APP_STATE global da versão web: é criado uma vez e
// passado por referência aos construtores dos componentes.
//
// Toda mutação acontece com mu preso. Geracao cresce a cada navegação
// e a cada logout; retomadas assíncronas que capturaram uma geração
// antiga descartam o resultado em vez de aplicá-lo sobre uma tela que
// já não existe.
type State struct {
	mu        sync.Mutex
	Geracao   uint64
	Perfil    *supabase.Perfil
	Eventos   []supabase.Evento
	Feriados  map[string]string
	Pendentes int
}

// NewState cria o contêiner vazio.
func NewState() *State {
	return &State{Feriados: map[string]string{}}
}

// Lock prende o estado para uma sequência de mutações atômicas.
func (s *State) Lock() { s.mu.Lock() }

// Unlock libera o estado.
func (s *State) Unlock() { s.mu.Unlock() }

// Avancar incrementa a geração e devolve o novo valor.
// Chamar com o estado preso.
func (s *State) Avancar() uint64 {
	s.Geracao++
	return s.Geracao
}

// Vigente informa se a geração capturada ainda é a corrente.
// Chamar com o estado preso.
func (s *State) Vigente(geracao uint64) bool {
	return s.Geracao == geracao
}

// Reset descarta sessão, perfil, eventos e pendências.
// Chamar com o estado preso.
func (s *State) Reset() {
	s.Perfil = nil
	s.Eventos = nil
	s.Feriados = map[string]string{}
	s.Pendentes = 0
}

// Surface é a superfície de apresentação entregue aos componentes.
// Quem a implementa decide como desenhar (shell web, terminal, testes).
type Surface interface {
	// Clear esvazia a área de render antes de montar uma nova tela.
	Clear()
	SetView(v view.View)
	SetChrome(c view.Chrome)
	SetFiltro(f view.FiltroStatus)
	SetMenu(m view.Menu)
	ShowModal(m view.Modal)
	HideModal()
	ShowBanner(b view.Banner)
}
