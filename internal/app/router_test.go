package app

import (
	"context"
	"reflect"
	"testing"

	"github.com/admvalente/agenda/internal/supabase"
	"github.com/admvalente/agenda/internal/view"
)

func novoRouterTeste(eventos []supabase.Evento) (*Router, *surfaceFake, *State) {
	state := NewState()
	state.Eventos = eventos
	surface := &surfaceFake{}
	roster := NewRoster(state, surface, &perfisFake{})
	return NewRouter(state, surface, roster), surface, state
}

func TestNavigateToHome(t *testing.T) {
	eventos := []supabase.Evento{{ID: 1, Titulo: "Culto"}, {ID: 2}}
	router, surface, _ := novoRouterTeste(eventos)

	router.NavigateTo(context.Background(), PaginaHome)

	if surface.clears != 1 {
		t.Fatalf("a área de render deveria ser limpa, clears=%d", surface.clears)
	}
	v := surface.ultimaView(t)
	if v.Tipo != view.TipoHome || len(v.Home.Cards) != 2 {
		t.Fatalf("home errada: %+v", v)
	}
	filtro := surface.filtros[len(surface.filtros)-1]
	if filtro.Rotulo != "Todos" || filtro.Total != 2 {
		t.Fatalf("filtro: %+v", filtro)
	}
	chrome := surface.chromes[len(surface.chromes)-1]
	if !chrome.BotaoAdicionar || !chrome.BarraBusca {
		t.Fatalf("home deveria exibir o chrome completo: %+v", chrome)
	}
}

func TestNavigateToGestaoEscondeChrome(t *testing.T) {
	for _, pagina := range []string{PaginaSetores, PaginaCidades, PaginaLocalidades, PaginaTiposEventos, PaginaFeriados} {
		router, surface, _ := novoRouterTeste(nil)
		router.NavigateTo(context.Background(), pagina)

		chrome := surface.chromes[len(surface.chromes)-1]
		if chrome.BotaoAdicionar || chrome.BarraAcoes || chrome.BarraBusca || chrome.FiltroStatus {
			t.Errorf("%s: chrome deveria sumir, veio %+v", pagina, chrome)
		}
		v := surface.ultimaView(t)
		if v.Tipo != view.TipoGestao || len(v.Gestao.Itens) == 0 {
			t.Errorf("%s: tela de gestão errada: %+v", pagina, v)
		}
	}
}

func TestNavigateToDesconhecidoRenderizaComoHome(t *testing.T) {
	eventos := []supabase.Evento{{ID: 1}, {ID: 2}, {ID: 3}}

	routerA, surfaceA, _ := novoRouterTeste(eventos)
	routerA.NavigateTo(context.Background(), PaginaHome)

	routerB, surfaceB, _ := novoRouterTeste(eventos)
	routerB.NavigateTo(context.Background(), "pagina_que_nao_existe")

	if !reflect.DeepEqual(surfaceA.views, surfaceB.views) {
		t.Fatalf("views divergem:\n%+v\n%+v", surfaceA.views, surfaceB.views)
	}
	if !reflect.DeepEqual(surfaceA.chromes, surfaceB.chromes) {
		t.Fatalf("chrome diverge:\n%+v\n%+v", surfaceA.chromes, surfaceB.chromes)
	}
	if !reflect.DeepEqual(surfaceA.filtros, surfaceB.filtros) {
		t.Fatalf("filtro diverge:\n%+v\n%+v", surfaceA.filtros, surfaceB.filtros)
	}
}

func TestNavigateToAvancaGeracao(t *testing.T) {
	router, _, state := novoRouterTeste(nil)

	router.NavigateTo(context.Background(), PaginaHome)
	router.NavigateTo(context.Background(), PaginaSetores)

	state.Lock()
	defer state.Unlock()
	if state.Geracao != 2 {
		t.Fatalf("geração deveria avançar a cada navegação, veio %d", state.Geracao)
	}
}

func TestNormalizarPagina(t *testing.T) {
	casos := map[string]string{
		"home":          PaginaHome,
		"adms":          PaginaAdms,
		"atendentes":    PaginaAtendentes,
		"tipos_eventos": PaginaTiposEventos,
		"qualquer":      PaginaHome,
		"":              PaginaHome,
	}
	for entrada, esperado := range casos {
		if got := NormalizarPagina(entrada); got != esperado {
			t.Errorf("NormalizarPagina(%q) = %q, esperava %q", entrada, got, esperado)
		}
	}
}
