package calendario

import (
	"fmt"
	"time"
)

// Alvo é o campo que recebe o valor escolhido no seletor.
// O texto exibido e o valor de apoio são gravados juntos.
type Alvo interface {
	Escrever(texto, valor string)
}

// SeletorData controla o cursor de mês de um seletor de data transiente.
// O estado vive apenas enquanto o overlay está aberto.
type SeletorData struct {
	alvo    Alvo
	opts    Options
	ano     int
	mes     int
	aberto  bool
	agora   func() time.Time
}

// NewSeletorData cria um seletor escrevendo no alvo informado.
// Um alvo nil é aceito: a escrita vira um no-op silencioso.
func NewSeletorData(alvo Alvo) *SeletorData {
	return &SeletorData{alvo: alvo, agora: time.Now}
}

// Open posiciona o cursor no mês da data inicial, ou no mês corrente
// quando inicial é vazia, e abre o overlay.
func (s *SeletorData) Open(inicial string, opts Options) {
	s.opts = opts
	s.opts.Selecionada = inicial

	if t, err := time.Parse("2006-01-02", inicial); err == nil {
		s.ano = t.Year()
		s.mes = int(t.Month()) - 1
	} else {
		now := s.agora()
		s.ano = now.Year()
		s.mes = int(now.Month()) - 1
	}
	s.aberto = true
}

// PrevMonth recua o cursor um mês, com vai-um de ano.
func (s *SeletorData) PrevMonth() {
	s.mes--
	if s.mes < 0 {
		s.mes = 11
		s.ano--
	}
}

// NextMonth avança o cursor um mês, com vai-um de ano.
func (s *SeletorData) NextMonth() {
	s.mes++
	if s.mes > 11 {
		s.mes = 0
		s.ano++
	}
}

// Grade renderiza o mês sob o cursor.
func (s *SeletorData) Grade() Grade {
	return Render(s.ano, s.mes, s.opts)
}

// Aberto informa se o overlay segue visível.
func (s *SeletorData) Aberto() bool {
	return s.aberto
}

// Close descarta o estado transiente do seletor.
func (s *SeletorData) Close() {
	s.aberto = false
	s.opts = Options{}
}

// SelectDay confirma um dia do mês exibido, grava no alvo e fecha.
// Cliques em dias de outros meses (células vazias) são ignorados.
// Devolve true quando a seleção foi aplicada.
func (s *SeletorData) SelectDay(data string) bool {
	if !s.aberto {
		return false
	}

	t, err := time.Parse("2006-01-02", data)
	if err != nil {
		return false
	}
	if t.Year() != s.ano || int(t.Month())-1 != s.mes {
		return false
	}

	if s.alvo != nil {
		s.alvo.Escrever(data, data)
	}
	s.Close()
	return true
}

// SeletorHora oferece horários fixos de meia em meia hora.
// Não há cursor: a lista de horários é estática.
type SeletorHora struct {
	alvo   Alvo
	aberto bool
}

// NewSeletorHora cria um seletor de horário escrevendo no alvo informado.
func NewSeletorHora(alvo Alvo) *SeletorHora {
	return &SeletorHora{alvo: alvo}
}

// Horarios enumera os horários de 08:00 a 22:00, inclusive.
// O último horário é 22:00, nunca 22:30.
func Horarios() []string {
	var horarios []string
	for hora := 8; hora <= 22; hora++ {
		for _, minuto := range []int{0, 30} {
			if hora == 22 && minuto == 30 {
				continue
			}
			horarios = append(horarios, fmt.Sprintf("%02d:%02d", hora, minuto))
		}
	}
	return horarios
}

// Open abre o overlay de horários.
func (s *SeletorHora) Open() {
	s.aberto = true
}

// Aberto informa se o overlay segue visível.
func (s *SeletorHora) Aberto() bool {
	return s.aberto
}

// Close fecha o overlay.
func (s *SeletorHora) Close() {
	s.aberto = false
}

// Select confirma um horário conhecido, grava no alvo e fecha.
// Devolve true quando a seleção foi aplicada.
func (s *SeletorHora) Select(horario string) bool {
	if !s.aberto {
		return false
	}

	valido := false
	for _, h := range Horarios() {
		if h == horario {
			valido = true
			break
		}
	}
	if !valido {
		return false
	}

	if s.alvo != nil {
		s.alvo.Escrever(horario, horario)
	}
	s.Close()
	return true
}
