package view

import (
	"strings"

	"github.com/google/uuid"

	"github.com/admvalente/agenda/internal/supabase"
)

// EventCard é o modelo de um card de evento da home.
type EventCard struct {
	ID         int64  `json:"id"`
	Titulo     string `json:"titulo"`
	Data       string `json:"data"`
	Hora       string `json:"hora"`
	Localidade string `json:"localidade"`
	Atendente  string `json:"atendente"`
	Sigla      string `json:"sigla"`
}

// FormatarDataCurta converte YYYY-MM-DD em DD/MM/YY.
// Entradas fora do formato voltam como vieram; vazio vira "N/D".
func FormatarDataCurta(data string) string {
	if data == "" {
		return "N/D"
	}
	partes := strings.Split(data, "-")
	if len(partes) != 3 || len(partes[0]) != 4 {
		return data
	}
	return partes[2] + "/" + partes[1] + "/" + partes[0][2:]
}

// NovoEventCard monta o card de um evento com os rótulos de fallback
// da interface original.
func NovoEventCard(ev supabase.Evento) EventCard {
	hora := "N/D"
	if len(ev.HoraEvento) >= 5 {
		hora = ev.HoraEvento[:5]
	}

	card := EventCard{
		ID:         ev.ID,
		Titulo:     ev.Titulo,
		Data:       FormatarDataCurta(ev.DataEvento),
		Hora:       hora,
		Localidade: ev.Localidade,
		Atendente:  ev.Atendente,
		Sigla:      ev.Sigla,
	}
	if card.Titulo == "" {
		card.Titulo = "Evento sem título"
	}
	if card.Localidade == "" {
		card.Localidade = "Não informado"
	}
	if card.Atendente == "" {
		card.Atendente = "Não informado"
	}
	if card.Sigla == "" {
		card.Sigla = "N/A"
	}
	return card
}

// NovaHome monta a lista de cards na ordem recebida do backend.
func NovaHome(eventos []supabase.Evento) *Home {
	cards := make([]EventCard, 0, len(eventos))
	for _, ev := range eventos {
		cards = append(cards, NovoEventCard(ev))
	}
	return &Home{Cards: cards}
}

// NovaGestao monta uma tela de gestão genérica a partir do token da
// página ("tipos_eventos" vira o título "tipos eventos").
func NovaGestao(pagina string, itens []ItemGestao) *Gestao {
	return &Gestao{
		Titulo: strings.ReplaceAll(pagina, "_", " "),
		Itens:  itens,
	}
}

// TipoAcao identifica o efeito de um botão de card de usuário.
type TipoAcao string

const (
	AcaoAutorizar          TipoAcao = "authorize"
	AcaoRemover            TipoAcao = "remove"
	AcaoLocalizarDuplicata TipoAcao = "localizar_duplicata"
)

// Acao é um botão de ação renderizado em um card ou modal.
type Acao struct {
	Tipo     TipoAcao             `json:"tipo"`
	Nivel    supabase.NivelAcesso `json:"nivel,omitempty"`
	EventoID int64                `json:"evento_id,omitempty"`
	Rotulo   string               `json:"rotulo"`
}

// UsuarioCard é o card de um atendente na tela de gestão de usuários.
type UsuarioCard struct {
	IDUsuario uuid.UUID            `json:"id_usuario"`
	Nome      string               `json:"nome"`
	Email     string               `json:"email"`
	Nivel     supabase.NivelAcesso `json:"nivel"`
	Acoes     []Acao               `json:"acoes"`
}

// NovoUsuarioCard monta o card de um atendente com os botões que o seu
// nível de acesso permite.
func NovoUsuarioCard(perfil supabase.Perfil) UsuarioCard {
	nome := perfil.NomeAtendente
	if nome == "" {
		nome = "Nome não preenchido"
	}

	var acoes []Acao
	switch perfil.NivelAcesso {
	case supabase.NivelAguardando:
		acoes = append(acoes,
			Acao{Tipo: AcaoAutorizar, Nivel: supabase.NivelLeitura, Rotulo: "Autorizar Leitura"},
			Acao{Tipo: AcaoAutorizar, Nivel: supabase.NivelTotal, Rotulo: "Autorizar Total"},
		)
	case supabase.NivelLeitura:
		acoes = append(acoes,
			Acao{Tipo: AcaoAutorizar, Nivel: supabase.NivelTotal, Rotulo: "Autorizar Total"},
		)
	case supabase.NivelTotal:
		acoes = append(acoes,
			Acao{Tipo: AcaoAutorizar, Nivel: supabase.NivelLeitura, Rotulo: "Rebaixar p/ Leitura"},
		)
	}
	acoes = append(acoes, Acao{Tipo: AcaoRemover, Rotulo: "Bloquear/Remover"})

	return UsuarioCard{
		IDUsuario: perfil.IDUsuario,
		Nome:      nome,
		Email:     perfil.Email,
		Nivel:     perfil.NivelAcesso,
		Acoes:     acoes,
	}
}

// FiltrarUsuarios aplica a busca por nome ou e-mail da tela de gestão.
// Termo vazio devolve todos os cards.
func FiltrarUsuarios(cards []UsuarioCard, termo string) []UsuarioCard {
	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		return cards
	}

	var filtrados []UsuarioCard
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Nome), termo) ||
			strings.Contains(strings.ToLower(card.Email), termo) {
			filtrados = append(filtrados, card)
		}
	}
	return filtrados
}
