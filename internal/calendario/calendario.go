package calendario

import (
	"fmt"
	"time"

	"github.com/admvalente/agenda/internal/supabase"
)

// MaxPontos limita a representação visual de eventos por dia.
// A contagem real segue disponível em Dia.TotalEventos.
const MaxPontos = 4

var meses = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Options parametriza a renderização de um mês.
type Options struct {
	Eventos     []supabase.Evento
	Feriados    []string
	Selecionada string
}

// Dia é a célula de um dia do mês renderizado.
type Dia struct {
	Data         string `json:"data"`
	Numero       int    `json:"numero"`
	Domingo      bool   `json:"domingo"`
	Feriado      bool   `json:"feriado"`
	Selecionado  bool   `json:"selecionado"`
	TotalEventos int    `json:"total_eventos"`
	Pontos       int    `json:"pontos"`
}

// Grade descreve um mês completo pronto para a camada de apresentação.
type Grade struct {
	Ano           int    `json:"ano"`
	Mes           int    `json:"mes"`
	Titulo        string `json:"titulo"`
	CelulasVazias int    `json:"celulas_vazias"`
	Dias          []Dia  `json:"dias"`
}

// Render monta a grade de um mês. mes segue a convenção 0-11.
// Função pura: mesmas entradas produzem sempre a mesma grade.
func Render(ano, mes int, opts Options) Grade {
	primeiro := time.Date(ano, time.Month(mes+1), 1, 12, 0, 0, 0, time.UTC)
	// Dia zero do mês seguinte é o último dia deste mês.
	diasNoMes := time.Date(ano, time.Month(mes+2), 0, 12, 0, 0, 0, time.UTC).Day()

	feriados := make(map[string]struct{}, len(opts.Feriados))
	for _, f := range opts.Feriados {
		feriados[f] = struct{}{}
	}

	eventosPorDia := make(map[string]int, len(opts.Eventos))
	for _, ev := range opts.Eventos {
		eventosPorDia[ev.DataEvento]++
	}

	grade := Grade{
		Ano:           ano,
		Mes:           mes,
		Titulo:        fmt.Sprintf("%s de %d", meses[mes], ano),
		CelulasVazias: int(primeiro.Weekday()),
		Dias:          make([]Dia, 0, diasNoMes),
	}

	for dia := 1; dia <= diasNoMes; dia++ {
		data := fmt.Sprintf("%04d-%02d-%02d", ano, mes+1, dia)
		_, feriado := feriados[data]
		total := eventosPorDia[data]

		grade.Dias = append(grade.Dias, Dia{
			Data:         data,
			Numero:       dia,
			Domingo:      time.Date(ano, time.Month(mes+1), dia, 12, 0, 0, 0, time.UTC).Weekday() == time.Sunday,
			Feriado:      feriado,
			Selecionado:  data == opts.Selecionada,
			TotalEventos: total,
			Pontos:       min(total, MaxPontos),
		})
	}

	return grade
}

// Destacado informa se o dia deve ser pintado de vermelho.
// Domingos e feriados recebem o mesmo tratamento visual.
func (d Dia) Destacado() bool {
	return d.Domingo || d.Feriado
}
