package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/admvalente/agenda/internal/supabase"
	"github.com/admvalente/agenda/internal/util"
	"github.com/admvalente/agenda/internal/view"
)

// Estado é o estado corrente do portão de sessão.
type Estado string

const (
	EstadoDeslogado        Estado = "deslogado"
	EstadoCadastroPendente Estado = "cadastro_pendente"
	EstadoAguardando       Estado = "aguardando_aprovacao"
	EstadoAtivo            Estado = "ativo"
)

// Auth é o colaborador de autenticação consumido pelo portão.
type Auth interface {
	SignInWithEmail(ctx context.Context, email string) error
	CurrentSession(ctx context.Context) (*supabase.Sessao, error)
	SignOut(ctx context.Context)
	Subscribe(fn func(supabase.AuthEvent, *supabase.Sessao)) *supabase.Subscription
}

// Contas é o subconjunto do backend para perfis da própria sessão.
type Contas interface {
	PerfilByUsuario(ctx context.Context, userID uuid.UUID) (supabase.Perfil, error)
	CreatePerfil(ctx context.Context, perfil supabase.Perfil) error
}

// Eventos busca a lista completa de eventos.
type Eventos interface {
	ListEventos(ctx context.Context) ([]supabase.Evento, error)
}

// Feriados fornece o mapa data→nome aplicado ao calendário.
type Feriados interface {
	Map(ctx context.Context) (map[string]string, error)
}

// PerfilCache é o armazenamento local do último perfil conhecido.
type PerfilCache interface {
	SavePerfil(perfil supabase.Perfil) error
	RemovePerfil()
	SaveToken(token string) error
	Clear()
}

// Gate decide qual tela o roteador pode montar a partir dos eventos de
// autenticação. É o dono exclusivo da sessão.
type Gate struct {
	state    *State
	surface  Surface
	router   *Router
	roster   *Roster
	auth     Auth
	contas   Contas
	eventos  Eventos
	feriados Feriados
	cache    PerfilCache

	mu     sync.Mutex
	estado Estado
	sessao *supabase.Sessao
	sub    *supabase.Subscription
}

// NewGate cria o portão de sessão. feriados pode ser nil quando o mapa
// de feriados não estiver habilitado.
func NewGate(state *State, surface Surface, router *Router, roster *Roster, auth Auth, contas Contas, eventos Eventos, feriados Feriados, cache PerfilCache) *Gate {
	return &Gate{
		state:    state,
		surface:  surface,
		router:   router,
		roster:   roster,
		auth:     auth,
		contas:   contas,
		eventos:  eventos,
		feriados: feriados,
		cache:    cache,
		estado:   EstadoDeslogado,
	}
}

// Estado devolve o estado corrente do portão.
func (g *Gate) Estado() Estado {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.estado
}

// Start inscreve o portão nos eventos de auth e reavalia qualquer
// sessão persistida antes do primeiro paint. Uma falha na checagem é
// fatal: o app fica na tela de carregamento, sem retry automático.
func (g *Gate) Start(ctx context.Context) {
	g.mu.Lock()
	g.sub = g.auth.Subscribe(func(event supabase.AuthEvent, sessao *supabase.Sessao) {
		g.Dispatch(ctx, event, sessao)
	})
	g.mu.Unlock()

	g.surface.SetView(view.View{Tipo: view.TipoLoading})

	sessao, err := g.auth.CurrentSession(ctx)
	if err != nil {
		log.Error().Err(err).Msg("erro ao obter sessão")
		g.surface.ShowBanner(view.BannerErro("Falha ao verificar autenticação. Tente recarregar a página."))
		return
	}

	if sessao == nil {
		g.deslogar()
		return
	}
	g.handleSessao(ctx, sessao)
}

// Stop cancela a inscrição nos eventos de auth.
func (g *Gate) Stop() {
	g.mu.Lock()
	sub := g.sub
	g.mu.Unlock()
	if sub != nil {
		sub.Cancel()
	}
}

// Dispatch é a função única que mapeia eventos de auth em transições.
func (g *Gate) Dispatch(ctx context.Context, event supabase.AuthEvent, sessao *supabase.Sessao) {
	log.Info().Str("evento", string(event)).Msg("estado de auth mudou")
	switch event {
	case supabase.EventSignedIn:
		g.handleSessao(ctx, sessao)
	case supabase.EventSignedOut:
		g.deslogar()
	}
}

// Login dispara o envio do magic link para o e-mail informado.
// E-mail vazio ou malformado é falha de validação: nada vai ao backend.
func (g *Gate) Login(ctx context.Context, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		g.surface.ShowBanner(view.BannerErro("Por favor, insira um e-mail."))
		return
	}
	if err := util.ValidateEmail(email); err != nil {
		g.surface.ShowBanner(view.BannerErro("Por favor, insira um e-mail válido."))
		return
	}

	if err := g.auth.SignInWithEmail(ctx, email); err != nil {
		log.Error().Err(err).Msg("erro no login mágico")
		g.surface.ShowBanner(view.BannerErro("Erro ao enviar o link: " + err.Error()))
		return
	}

	g.surface.SetView(view.View{Tipo: view.TipoLinkEnviado, LinkEnviado: &view.LinkEnviado{Email: email}})
}

// Logout encerra a sessão; a transição acontece via evento SIGNED_OUT.
func (g *Gate) Logout(ctx context.Context) {
	g.auth.SignOut(ctx)
}

// Cadastro completa o perfil de um usuário recém-chegado. Nome e
// telefone são obrigatórios; a linha nasce aguardando aprovação.
func (g *Gate) Cadastro(ctx context.Context, nome, telefone string) {
	nome = strings.TrimSpace(nome)
	telefone = strings.TrimSpace(telefone)
	if util.RequireString(nome, "nome") != nil || util.RequireString(telefone, "telefone") != nil {
		g.surface.ShowBanner(view.BannerErro("Nome e telefone são obrigatórios."))
		return
	}

	g.mu.Lock()
	sessao := g.sessao
	g.mu.Unlock()
	if sessao == nil {
		g.surface.ShowBanner(view.BannerErro("Sessão expirada. Entre novamente."))
		return
	}

	perfil := supabase.Perfil{
		IDUsuario:        sessao.UserID,
		Email:            sessao.Email,
		NomeAtendente:    nome,
		Telefone:         telefone,
		NivelAcesso:      supabase.NivelAguardando,
		AprovadoPorAdmin: false,
	}
	if err := g.contas.CreatePerfil(ctx, perfil); err != nil {
		log.Error().Err(err).Msg("erro ao salvar cadastro")
		g.surface.ShowBanner(view.BannerErro("Não foi possível salvar seu cadastro: " + err.Error()))
		return
	}

	g.mu.Lock()
	g.estado = EstadoAguardando
	g.mu.Unlock()
	g.surface.ShowModal(view.ModalAguardandoAprovacao())
}

// handleSessao resolve o perfil de uma sessão autenticada e decide a
// transição. Ausência de perfil não é erro; qualquer outra falha de
// consulta aborta a transição e congela o estado anterior.
func (g *Gate) handleSessao(ctx context.Context, sessao *supabase.Sessao) {
	if sessao == nil {
		return
	}

	g.mu.Lock()
	g.sessao = sessao
	g.mu.Unlock()

	if err := g.cache.SaveToken(sessao.AccessToken); err != nil {
		log.Warn().Err(err).Msg("não foi possível persistir a sessão")
	}

	perfil, err := g.contas.PerfilByUsuario(ctx, sessao.UserID)
	switch {
	case errors.Is(err, supabase.ErrNotFound):
		g.mu.Lock()
		g.estado = EstadoCadastroPendente
		g.mu.Unlock()
		g.cache.RemovePerfil()
		g.surface.SetView(view.View{Tipo: view.TipoCadastro})
		return
	case err != nil:
		log.Error().Err(err).Msg("erro ao buscar perfil")
		g.surface.ShowBanner(view.BannerErro("Ocorreu um erro ao verificar seu perfil."))
		return
	}

	// O aviso vale para qualquer perfil ainda em Aguardando,
	// independente da flag aprovado_por_admin.
	if perfil.NivelAcesso == supabase.NivelAguardando {
		g.mu.Lock()
		g.estado = EstadoAguardando
		g.mu.Unlock()
		g.cache.RemovePerfil()
		g.surface.ShowModal(view.ModalAguardandoAprovacao())
		return
	}

	g.ativar(ctx, perfil)
}

// ativar entra no estado Ativo: persiste o perfil, carrega os dados
// iniciais em paralelo e monta a home.
func (g *Gate) ativar(ctx context.Context, perfil supabase.Perfil) {
	// Um SIGNED_OUT pode resolver enquanto a busca de perfil estava no
	// ar; a sessão é reconferida antes de assumir o estado Ativo.
	g.mu.Lock()
	if g.sessao == nil || g.sessao.UserID != perfil.IDUsuario {
		g.mu.Unlock()
		log.Debug().Msg("sessão encerrada durante a verificação do perfil, descartando")
		return
	}
	g.estado = EstadoAtivo
	sessaoID := g.sessao.UserID
	g.mu.Unlock()

	if err := g.cache.SavePerfil(perfil); err != nil {
		log.Warn().Err(err).Msg("não foi possível persistir o perfil")
	}

	var wg sync.WaitGroup
	var eventos []supabase.Evento
	var feriados map[string]string
	var errEventos, errFeriados error

	wg.Add(1)
	go func() {
		defer wg.Done()
		eventos, errEventos = g.eventos.ListEventos(ctx)
	}()
	if g.feriados != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			feriados, errFeriados = g.feriados.Map(ctx)
		}()
	}
	wg.Wait()

	if errEventos != nil {
		log.Error().Err(errEventos).Msg("erro fatal durante a inicialização do app")
		g.surface.ShowBanner(view.BannerErro("Ocorreu um erro ao carregar os dados iniciais."))
		return
	}
	if errFeriados != nil {
		log.Warn().Err(errFeriados).Msg("mapa de feriados indisponível, seguindo sem destaque")
		feriados = nil
	}

	// Se houve logout enquanto as buscas estavam no ar, o resultado
	// não pode ser aplicado sobre a tela de login.
	g.mu.Lock()
	if g.estado != EstadoAtivo || g.sessao == nil || g.sessao.UserID != sessaoID {
		g.mu.Unlock()
		log.Debug().Msg("inicialização obsoleta, descartando")
		return
	}
	g.mu.Unlock()

	g.state.Lock()
	g.state.Perfil = &perfil
	g.state.Eventos = eventos
	if feriados != nil {
		g.state.Feriados = feriados
	}
	g.state.Unlock()

	g.router.NavigateTo(ctx, PaginaHome)
	g.roster.Pendentes(ctx)
	log.Info().Str("usuario", perfil.Email).Msg("aplicação inicializada")
}

// deslogar volta ao estado deslogado a partir de qualquer outro:
// descarta sessão, perfil e eventos, limpa o cache local por inteiro e
// monta a tela de login.
func (g *Gate) deslogar() {
	g.mu.Lock()
	g.estado = EstadoDeslogado
	g.sessao = nil
	g.mu.Unlock()

	g.state.Lock()
	g.state.Avancar()
	g.state.Reset()
	g.state.Unlock()

	g.cache.Clear()

	g.surface.Clear()
	g.surface.HideModal()
	g.surface.SetChrome(view.Chrome{})
	g.surface.SetView(view.View{Tipo: view.TipoLogin})
	log.Info().Msg("tela de login carregada")
}
