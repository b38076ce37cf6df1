package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/admvalente/agenda/internal/view"
)

// Páginas conhecidas do roteador. Qualquer outro token cai em home.
const (
	PaginaHome         = "home"
	PaginaAdms         = "adms"
	PaginaAtendentes   = "atendentes"
	PaginaSetores      = "setores"
	PaginaCidades      = "cidades"
	PaginaLocalidades  = "localidades"
	PaginaTiposEventos = "tipos_eventos"
	PaginaFeriados     = "feriados"
)

var paginasGestao = map[string]struct{}{
	PaginaSetores:      {},
	PaginaCidades:      {},
	PaginaLocalidades:  {},
	PaginaTiposEventos: {},
	PaginaFeriados:     {},
}

// NormalizarPagina reduz um token desconhecido ao fallback home.
func NormalizarPagina(pagina string) string {
	switch pagina {
	case PaginaHome, PaginaAdms, PaginaAtendentes:
		return pagina
	}
	if _, ok := paginasGestao[pagina]; ok {
		return pagina
	}
	return PaginaHome
}

// ChromeParaPagina deriva a visibilidade do chrome da página corrente.
// Função pura: só a home exibe botão de adicionar, barra de ações,
// busca e indicador de filtro.
func ChromeParaPagina(pagina string) view.Chrome {
	home := NormalizarPagina(pagina) == PaginaHome
	return view.Chrome{
		BotaoAdicionar: home,
		BarraAcoes:     home,
		BarraBusca:     home,
		FiltroStatus:   home,
	}
}

// Router mapeia tokens de página para telas renderizadas.
type Router struct {
	state   *State
	surface Surface
	roster  *Roster
}

// NewRouter cria o roteador sobre o estado e a superfície injetados.
func NewRouter(state *State, surface Surface, roster *Roster) *Router {
	return &Router{state: state, surface: surface, roster: roster}
}

// NavigateTo troca a página corrente. A área de render é sempre limpa
// antes de montar a nova tela, e a geração avança para invalidar
// qualquer retomada assíncrona da página anterior.
func (r *Router) NavigateTo(ctx context.Context, pagina string) {
	pagina = NormalizarPagina(pagina)

	r.state.Lock()
	geracao := r.state.Avancar()
	r.state.Unlock()

	log.Debug().Str("pagina", pagina).Uint64("geracao", geracao).Msg("navegando")

	r.surface.Clear()
	r.surface.SetChrome(ChromeParaPagina(pagina))

	switch pagina {
	case PaginaAdms, PaginaAtendentes:
		r.roster.Carregar(ctx, geracao)
	case PaginaHome:
		r.renderHome()
	default:
		r.renderGestao(pagina)
	}
}

func (r *Router) renderHome() {
	r.state.Lock()
	eventos := r.state.Eventos
	r.state.Unlock()

	r.surface.SetView(view.View{Tipo: view.TipoHome, Home: view.NovaHome(eventos)})
	r.surface.SetFiltro(view.FiltroStatus{Rotulo: "Todos", Total: len(eventos)})
}

// renderGestao monta uma tela de gestão genérica. Os itens reais virão
// de um colaborador externo; por ora a lista é ilustrativa.
func (r *Router) renderGestao(pagina string) {
	itens := []view.ItemGestao{
		{ID: 1, Nome: "Item 1 de " + pagina},
		{ID: 2, Nome: "Item 2 de " + pagina},
	}
	r.surface.SetView(view.View{Tipo: view.TipoGestao, Gestao: view.NovaGestao(pagina, itens)})
}
