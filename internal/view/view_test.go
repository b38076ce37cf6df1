package view

import (
	"testing"

	"github.com/google/uuid"

	"github.com/admvalente/agenda/internal/supabase"
)

func TestFormatarDataCurta(t *testing.T) {
	casos := []struct {
		entrada string
		saida   string
	}{
		{"2024-05-10", "10/05/24"},
		{"1999-12-31", "31/12/99"},
		{"", "N/D"},
		{"10/05/2024", "10/05/2024"},
		{"2024-05", "2024-05"},
	}
	for _, caso := range casos {
		if got := FormatarDataCurta(caso.entrada); got != caso.saida {
			t.Errorf("FormatarDataCurta(%q) = %q, esperava %q", caso.entrada, got, caso.saida)
		}
	}
}

func TestNovoEventCardFallbacks(t *testing.T) {
	card := NovoEventCard(supabase.Evento{ID: 7})

	if card.Titulo != "Evento sem título" {
		t.Errorf("título: %q", card.Titulo)
	}
	if card.Data != "N/D" || card.Hora != "N/D" {
		t.Errorf("data/hora: %q %q", card.Data, card.Hora)
	}
	if card.Localidade != "Não informado" || card.Atendente != "Não informado" {
		t.Errorf("localidade/atendente: %q %q", card.Localidade, card.Atendente)
	}
	if card.Sigla != "N/A" {
		t.Errorf("sigla: %q", card.Sigla)
	}
}

func TestNovoEventCardCortaSegundos(t *testing.T) {
	card := NovoEventCard(supabase.Evento{ID: 1, HoraEvento: "14:30:00"})
	if card.Hora != "14:30" {
		t.Fatalf("hora deveria vir sem segundos, veio %q", card.Hora)
	}
}

func TestNovoUsuarioCardBotoesPorNivel(t *testing.T) {
	rotulos := func(card UsuarioCard) []string {
		var out []string
		for _, acao := range card.Acoes {
			out = append(out, acao.Rotulo)
		}
		return out
	}

	casos := []struct {
		nivel    supabase.NivelAcesso
		esperado []string
	}{
		{supabase.NivelAguardando, []string{"Autorizar Leitura", "Autorizar Total", "Bloquear/Remover"}},
		{supabase.NivelLeitura, []string{"Autorizar Total", "Bloquear/Remover"}},
		{supabase.NivelTotal, []string{"Rebaixar p/ Leitura", "Bloquear/Remover"}},
	}

	for _, caso := range casos {
		card := NovoUsuarioCard(supabase.Perfil{IDUsuario: uuid.New(), NivelAcesso: caso.nivel})
		got := rotulos(card)
		if len(got) != len(caso.esperado) {
			t.Errorf("%s: esperava %v, veio %v", caso.nivel, caso.esperado, got)
			continue
		}
		for i := range got {
			if got[i] != caso.esperado[i] {
				t.Errorf("%s: esperava %v, veio %v", caso.nivel, caso.esperado, got)
				break
			}
		}
	}
}

func TestNovoUsuarioCardNomeVazio(t *testing.T) {
	card := NovoUsuarioCard(supabase.Perfil{IDUsuario: uuid.New()})
	if card.Nome != "Nome não preenchido" {
		t.Fatalf("nome: %q", card.Nome)
	}
}

func TestFiltrarUsuarios(t *testing.T) {
	cards := []UsuarioCard{
		{Nome: "Maria Silva", Email: "maria@exemplo.com"},
		{Nome: "João Souza", Email: "joao@exemplo.com"},
	}

	if got := FiltrarUsuarios(cards, ""); len(got) != 2 {
		t.Errorf("termo vazio deveria devolver todos, veio %d", len(got))
	}
	if got := FiltrarUsuarios(cards, "maria"); len(got) != 1 || got[0].Nome != "Maria Silva" {
		t.Errorf("busca por nome falhou: %+v", got)
	}
	if got := FiltrarUsuarios(cards, "JOAO@"); len(got) != 1 || got[0].Nome != "João Souza" {
		t.Errorf("busca por e-mail deveria ignorar caixa: %+v", got)
	}
	if got := FiltrarUsuarios(cards, "inexistente"); len(got) != 0 {
		t.Errorf("busca sem resultado deveria vir vazia: %+v", got)
	}
}

func TestNovoMenuBadge(t *testing.T) {
	menu := NovoMenu(3)
	if len(menu.Itens) != 7 {
		t.Fatalf("esperava 7 entradas, veio %d", len(menu.Itens))
	}
	for _, item := range menu.Itens {
		esperaBadge := item.Pagina == "adms" || item.Pagina == "atendentes"
		if esperaBadge && item.Badge != 3 {
			t.Errorf("%s deveria ter badge 3, veio %d", item.Pagina, item.Badge)
		}
		if !esperaBadge && item.Badge != 0 {
			t.Errorf("%s não deveria ter badge, veio %d", item.Pagina, item.Badge)
		}
	}
}

func TestModalAguardandoAprovacaoNaoFechavel(t *testing.T) {
	if ModalAguardandoAprovacao().Fechavel {
		t.Fatal("o aviso de aprovação pendente não pode ser fechável")
	}
}
