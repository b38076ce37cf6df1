package supabase

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound é retornado quando nenhum registro é encontrado.
var ErrNotFound = errors.New("registro não encontrado")

// NivelAcesso representa o nível de acesso de um atendente.
type NivelAcesso string

const (
	NivelAguardando NivelAcesso = "Aguardando"
	NivelLeitura    NivelAcesso = "Leitura"
	NivelTotal      NivelAcesso = "Total"
)

// Valido informa se o nível é um dos valores conhecidos.
func (n NivelAcesso) Valido() bool {
	switch n {
	case NivelAguardando, NivelLeitura, NivelTotal:
		return true
	}
	return false
}

// Sessao representa a sessão autenticada corrente.
type Sessao struct {
	UserID      uuid.UUID
	Email       string
	AccessToken string
}

// Perfil é a linha da tabela atendentes associada a um usuário.
type Perfil struct {
	IDUsuario        uuid.UUID   `json:"id_usuario"`
	Email            string      `json:"email"`
	NomeAtendente    string      `json:"nome_atendente"`
	Telefone         string      `json:"telefone"`
	NivelAcesso      NivelAcesso `json:"nivel_acesso"`
	AprovadoPorAdmin bool        `json:"aprovado_por_admin"`
}

// Evento é uma linha da tabela eventos. Somente leitura para o app.
type Evento struct {
	ID         int64  `json:"id"`
	Titulo     string `json:"titulo"`
	DataEvento string `json:"data_evento"`
	HoraEvento string `json:"hora_evento"`
	Localidade string `json:"localidade"`
	Atendente  string `json:"atendente"`
	Sigla      string `json:"sigla"`
}

// Feriado é uma linha da tabela feriados.
type Feriado struct {
	DataFeriado string `json:"data_feriado"`
	NomeFeriado string `json:"nome_feriado"`
	TipoFeriado string `json:"tipo_feriado"`
}

// AuthEvent identifica mudanças no estado de autenticação.
type AuthEvent string

const (
	EventSignedIn  AuthEvent = "SIGNED_IN"
	EventSignedOut AuthEvent = "SIGNED_OUT"
)
