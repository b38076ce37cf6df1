package calendario

import (
	"testing"
	"time"
)

type alvoFake struct {
	texto    string
	valor    string
	escritas int
}

func (a *alvoFake) Escrever(texto, valor string) {
	a.texto = texto
	a.valor = valor
	a.escritas++
}

func TestSeletorDataDozeMesesVoltaAoMesmo(t *testing.T) {
	inicios := []string{"2024-01-15", "2024-12-31", "2023-06-01"}
	for _, inicio := range inicios {
		s := NewSeletorData(nil)
		s.Open(inicio, Options{})

		antes := s.Grade()
		for i := 0; i < 12; i++ {
			s.NextMonth()
		}
		depois := s.Grade()

		if depois.Mes != antes.Mes || depois.Ano != antes.Ano+1 {
			t.Errorf("%s: esperava %d/%d, veio %d/%d", inicio, antes.Mes, antes.Ano+1, depois.Mes, depois.Ano)
		}
	}
}

func TestSeletorDataViraAnoNosExtremos(t *testing.T) {
	s := NewSeletorData(nil)
	s.Open("2024-01-10", Options{})

	s.PrevMonth()
	if grade := s.Grade(); grade.Mes != 11 || grade.Ano != 2023 {
		t.Fatalf("janeiro-1 deveria ser dezembro/2023, veio %d/%d", grade.Mes, grade.Ano)
	}

	s.NextMonth()
	if grade := s.Grade(); grade.Mes != 0 || grade.Ano != 2024 {
		t.Fatalf("dezembro+1 deveria ser janeiro/2024, veio %d/%d", grade.Mes, grade.Ano)
	}
}

func TestSeletorDataAbreNoMesCorrente(t *testing.T) {
	s := NewSeletorData(nil)
	s.agora = func() time.Time { return time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC) }

	s.Open("", Options{})
	if grade := s.Grade(); grade.Mes != 2 || grade.Ano != 2024 {
		t.Fatalf("esperava março/2024, veio %d/%d", grade.Mes, grade.Ano)
	}
}

func TestSeletorDataSelecionaDiaDoMesExibido(t *testing.T) {
	alvo := &alvoFake{}
	s := NewSeletorData(alvo)
	s.Open("2024-05-15", Options{})

	if !s.SelectDay("2024-05-20") {
		t.Fatal("seleção dentro do mês deveria ser aplicada")
	}
	if alvo.texto != "2024-05-20" || alvo.valor != "2024-05-20" {
		t.Fatalf("alvo não recebeu a data: %+v", alvo)
	}
	if s.Aberto() {
		t.Fatal("overlay deveria fechar após a seleção")
	}
}

func TestSeletorDataIgnoraDiaDeOutroMes(t *testing.T) {
	alvo := &alvoFake{}
	s := NewSeletorData(alvo)
	s.Open("2024-05-15", Options{})

	if s.SelectDay("2024-06-01") {
		t.Fatal("dia de outro mês não pode ser selecionado")
	}
	if s.SelectDay("2023-05-20") {
		t.Fatal("mesmo mês de outro ano não pode ser selecionado")
	}
	if alvo.escritas != 0 {
		t.Fatalf("alvo não deveria ter sido escrito: %+v", alvo)
	}
	if !s.Aberto() {
		t.Fatal("overlay deveria continuar aberto após o no-op")
	}
}

func TestSeletorDataSemAlvoFechaSemEscrever(t *testing.T) {
	s := NewSeletorData(nil)
	s.Open("2024-05-15", Options{})

	if !s.SelectDay("2024-05-20") {
		t.Fatal("seleção deveria ser aplicada mesmo sem alvo")
	}
	if s.Aberto() {
		t.Fatal("overlay deveria fechar")
	}
}

func TestHorarios(t *testing.T) {
	horarios := Horarios()

	if len(horarios) != 29 {
		t.Fatalf("esperava 29 horários, veio %d", len(horarios))
	}
	if horarios[0] != "08:00" {
		t.Errorf("primeiro horário deveria ser 08:00, veio %s", horarios[0])
	}
	if ultimo := horarios[len(horarios)-1]; ultimo != "22:00" {
		t.Errorf("último horário deveria ser 22:00, veio %s", ultimo)
	}
	for _, h := range horarios {
		if h == "22:30" {
			t.Error("22:30 não deveria existir")
		}
	}
}

func TestSeletorHora(t *testing.T) {
	alvo := &alvoFake{}
	s := NewSeletorHora(alvo)
	s.Open()

	if s.Select("07:00") {
		t.Fatal("horário fora da lista não pode ser selecionado")
	}
	if !s.Aberto() {
		t.Fatal("overlay deveria continuar aberto após horário inválido")
	}

	if !s.Select("14:30") {
		t.Fatal("horário válido deveria ser aplicado")
	}
	if alvo.texto != "14:30" {
		t.Fatalf("alvo não recebeu o horário: %+v", alvo)
	}
	if s.Aberto() {
		t.Fatal("overlay deveria fechar após a seleção")
	}
}
