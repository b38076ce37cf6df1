package calendario

import (
	"testing"

	"github.com/admvalente/agenda/internal/supabase"
)

func TestRenderDiasNoMes(t *testing.T) {
	casos := []struct {
		ano  int
		mes  int
		dias int
	}{
		{2024, 1, 29}, // fevereiro bissexto
		{2023, 1, 28},
		{2024, 3, 30},
		{2024, 0, 31},
		{2024, 11, 31},
		{1900, 1, 28}, // século não bissexto
		{2000, 1, 29},
	}

	for _, caso := range casos {
		grade := Render(caso.ano, caso.mes, Options{})
		if len(grade.Dias) != caso.dias {
			t.Errorf("%d-%02d: esperava %d dias, veio %d", caso.ano, caso.mes+1, caso.dias, len(grade.Dias))
		}
	}
}

func TestRenderCelulasVazias(t *testing.T) {
	// 2024-05-01 caiu numa quarta-feira.
	grade := Render(2024, 4, Options{})
	if grade.CelulasVazias != 3 {
		t.Fatalf("esperava 3 células vazias, veio %d", grade.CelulasVazias)
	}
	if grade.Titulo != "maio de 2024" {
		t.Fatalf("título inesperado: %q", grade.Titulo)
	}

	// 2023-10-01 caiu num domingo.
	grade = Render(2023, 9, Options{})
	if grade.CelulasVazias != 0 {
		t.Fatalf("esperava 0 células vazias, veio %d", grade.CelulasVazias)
	}
}

func TestRenderDestaques(t *testing.T) {
	grade := Render(2024, 4, Options{Feriados: []string{"2024-05-15"}})

	porData := map[string]Dia{}
	for _, dia := range grade.Dias {
		porData[dia.Data] = dia
	}

	if dia := porData["2024-05-05"]; !dia.Domingo || !dia.Destacado() {
		t.Errorf("2024-05-05 é domingo e deveria ser destacado: %+v", dia)
	}
	if dia := porData["2024-05-15"]; dia.Domingo || !dia.Feriado || !dia.Destacado() {
		t.Errorf("2024-05-15 é feriado e deveria ser destacado: %+v", dia)
	}
	if dia := porData["2024-05-16"]; dia.Destacado() {
		t.Errorf("2024-05-16 não é domingo nem feriado: %+v", dia)
	}
}

func TestRenderSelecionado(t *testing.T) {
	grade := Render(2024, 4, Options{Selecionada: "2024-05-10"})

	selecionados := 0
	for _, dia := range grade.Dias {
		if dia.Selecionado {
			selecionados++
			if dia.Data != "2024-05-10" {
				t.Errorf("dia errado selecionado: %s", dia.Data)
			}
		}
	}
	if selecionados != 1 {
		t.Fatalf("esperava exatamente 1 dia selecionado, veio %d", selecionados)
	}
}

func TestRenderContagemDeEventos(t *testing.T) {
	eventos := make([]supabase.Evento, 0, 5)
	for i := int64(1); i <= 5; i++ {
		eventos = append(eventos, supabase.Evento{ID: i, DataEvento: "2024-05-10"})
	}

	grade := Render(2024, 4, Options{Eventos: eventos})
	for _, dia := range grade.Dias {
		if dia.Data != "2024-05-10" {
			continue
		}
		if dia.TotalEventos != 5 {
			t.Errorf("contagem real deveria ser 5, veio %d", dia.TotalEventos)
		}
		if dia.Pontos != MaxPontos {
			t.Errorf("pontos visuais deveriam parar em %d, veio %d", MaxPontos, dia.Pontos)
		}
		return
	}
	t.Fatal("dia 2024-05-10 não encontrado na grade")
}

func TestRenderDeterministico(t *testing.T) {
	opts := Options{
		Eventos:     []supabase.Evento{{ID: 1, DataEvento: "2024-05-10"}},
		Feriados:    []string{"2024-05-01"},
		Selecionada: "2024-05-10",
	}

	a := Render(2024, 4, opts)
	b := Render(2024, 4, opts)
	if len(a.Dias) != len(b.Dias) {
		t.Fatal("renders divergiram em tamanho")
	}
	for i := range a.Dias {
		if a.Dias[i] != b.Dias[i] {
			t.Fatalf("render não determinístico no dia %d: %+v vs %+v", i, a.Dias[i], b.Dias[i])
		}
	}
}
