package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/admvalente/agenda/internal/supabase"
	"github.com/admvalente/agenda/internal/view"
)

// Perfis é o subconjunto do backend usado pela gestão de usuários.
type Perfis interface {
	ListPerfis(ctx context.Context) ([]supabase.Perfil, error)
	UpdateNivel(ctx context.Context, userID uuid.UUID, nivel supabase.NivelAcesso) error
	DeletePerfil(ctx context.Context, userID uuid.UUID) error
}

// Roster carrega e mantém a tela de gestão de usuários, além do
// contador de cadastros aguardando aprovação que alimenta o badge do
// menu. A autorização de verdade é do backend; aqui só se apresenta.
type Roster struct {
	state   *State
	surface Surface
	perfis  Perfis
}

// NewRoster cria a gestão de usuários com as dependências injetadas.
func NewRoster(state *State, surface Surface, perfis Perfis) *Roster {
	return &Roster{state: state, surface: surface, perfis: perfis}
}

// Carregar busca todos os perfis e monta a tela. A geração capturada
// pelo chamador é conferida antes de aplicar o resultado: se houve
// navegação ou logout no meio do caminho, nada é desenhado.
func (r *Roster) Carregar(ctx context.Context, geracao uint64) {
	perfis, err := r.perfis.ListPerfis(ctx)

	r.state.Lock()
	if !r.state.Vigente(geracao) {
		r.state.Unlock()
		log.Debug().Uint64("geracao", geracao).Msg("lista de usuários obsoleta, descartando")
		return
	}
	if err != nil {
		r.state.Unlock()
		log.Error().Err(err).Msg("erro ao carregar usuários")
		r.surface.ShowBanner(view.BannerErro("Não foi possível carregar os usuários."))
		return
	}

	pendentes := 0
	cards := make([]view.UsuarioCard, 0, len(perfis))
	for _, p := range perfis {
		if p.NivelAcesso == supabase.NivelAguardando {
			pendentes++
		}
		cards = append(cards, view.NovoUsuarioCard(p))
	}
	r.state.Pendentes = pendentes

	// As escritas na superfície acontecem sob o mesmo lock da checagem
	// de geração: um logout concorrente só limpa a tela antes ou depois
	// do render completo, nunca no meio.
	r.surface.SetView(view.View{Tipo: view.TipoUsuarios, Usuarios: &view.Usuarios{Cards: cards}})
	r.surface.SetMenu(view.NovoMenu(pendentes))
	r.state.Unlock()
}

// Recarregar refaz a tela sob a geração corrente, após uma mutação.
func (r *Roster) Recarregar(ctx context.Context) {
	r.state.Lock()
	geracao := r.state.Geracao
	r.state.Unlock()
	r.Carregar(ctx, geracao)
}

// Autorizar muda o nível de acesso de um atendente e refaz a lista.
func (r *Roster) Autorizar(ctx context.Context, userID uuid.UUID, nivel supabase.NivelAcesso) {
	if err := r.perfis.UpdateNivel(ctx, userID, nivel); err != nil {
		log.Error().Err(err).Str("usuario", userID.String()).Msg("erro ao atualizar nível")
		r.surface.ShowBanner(view.BannerErro("Não foi possível atualizar o usuário."))
		return
	}
	r.Recarregar(ctx)
}

// Remover bloqueia um atendente apagando sua linha e refaz a lista.
func (r *Roster) Remover(ctx context.Context, userID uuid.UUID) {
	if err := r.perfis.DeletePerfil(ctx, userID); err != nil {
		log.Error().Err(err).Str("usuario", userID.String()).Msg("erro ao remover usuário")
		r.surface.ShowBanner(view.BannerErro("Não foi possível remover o usuário."))
		return
	}
	r.Recarregar(ctx)
}

// Pendentes conta perfis aguardando aprovação e atualiza o badge do
// menu. Usado na entrada da sessão, fora da tela de gestão.
func (r *Roster) Pendentes(ctx context.Context) {
	perfis, err := r.perfis.ListPerfis(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("erro ao verificar pendências de aprovação")
		return
	}

	pendentes := 0
	for _, p := range perfis {
		if p.NivelAcesso == supabase.NivelAguardando {
			pendentes++
		}
	}

	r.state.Lock()
	r.state.Pendentes = pendentes
	r.state.Unlock()

	r.surface.SetMenu(view.NovoMenu(pendentes))
}
