package view

import "time"

// Tipo discrimina qual tela o shell deve apresentar.
type Tipo string

const (
	TipoLoading     Tipo = "loading"
	TipoLogin       Tipo = "login"
	TipoLinkEnviado Tipo = "link_enviado"
	TipoCadastro    Tipo = "cadastro"
	TipoHome        Tipo = "home"
	TipoGestao      Tipo = "gestao"
	TipoUsuarios    Tipo = "usuarios"
)

// View é a união etiquetada consumida pela camada de apresentação.
// Apenas o campo correspondente ao Tipo vem preenchido.
type View struct {
	Tipo        Tipo         `json:"tipo"`
	LinkEnviado *LinkEnviado `json:"link_enviado,omitempty"`
	Home        *Home        `json:"home,omitempty"`
	Gestao      *Gestao      `json:"gestao,omitempty"`
	Usuarios    *Usuarios    `json:"usuarios,omitempty"`
}

// LinkEnviado confirma o envio do magic link.
type LinkEnviado struct {
	Email string `json:"email"`
}

// Home é a lista principal de eventos.
type Home struct {
	Cards []EventCard `json:"cards"`
}

// Gestao é uma tela genérica de gestão com itens placeholder.
type Gestao struct {
	Titulo string       `json:"titulo"`
	Itens  []ItemGestao `json:"itens"`
}

// ItemGestao é uma linha de uma tela de gestão.
type ItemGestao struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Usuarios é a tela de gestão de usuários com busca client-side.
type Usuarios struct {
	Cards []UsuarioCard `json:"cards"`
}

// Chrome agrupa a visibilidade dos elementos fixos da interface.
// É função pura da página corrente.
type Chrome struct {
	BotaoAdicionar bool `json:"botao_adicionar"`
	BarraAcoes     bool `json:"barra_acoes"`
	BarraBusca     bool `json:"barra_busca"`
	FiltroStatus   bool `json:"filtro_status"`
}

// FiltroStatus descreve o indicador "filtro / total" da home.
type FiltroStatus struct {
	Rotulo string `json:"rotulo"`
	Total  int    `json:"total"`
}

// Modal é um diálogo sobreposto, opcionalmente não fechável.
type Modal struct {
	Titulo   string   `json:"titulo"`
	Corpo    []string `json:"corpo"`
	Acoes    []Acao   `json:"acoes,omitempty"`
	Fechavel bool     `json:"fechavel"`
}

// DuracaoBanner é o tempo fixo de exibição de um banner de erro.
const DuracaoBanner = 5 * time.Second

// Banner é a notificação transitória de erro.
type Banner struct {
	Mensagem string        `json:"mensagem"`
	Duracao  time.Duration `json:"-"`
}

// BannerErro monta um banner com a duração padrão.
func BannerErro(mensagem string) Banner {
	return Banner{Mensagem: mensagem, Duracao: DuracaoBanner}
}

// Menu é o menu lateral de gestão.
type Menu struct {
	Itens []MenuItem `json:"itens"`
}

// MenuItem é uma entrada do menu lateral. Badge zero não é exibido.
type MenuItem struct {
	Pagina string `json:"pagina"`
	Rotulo string `json:"rotulo"`
	Icone  string `json:"icone"`
	Badge  int    `json:"badge,omitempty"`
}

// NovoMenu monta o menu de gestão, com o badge de pendências nas
// entradas que listam usuários.
func NovoMenu(pendentes int) Menu {
	entradas := []MenuItem{
		{Pagina: "adms", Rotulo: "Adms", Icone: "👑"},
		{Pagina: "atendentes", Rotulo: "Atendentes", Icone: "👥"},
		{Pagina: "setores", Rotulo: "Setores", Icone: "🏢"},
		{Pagina: "cidades", Rotulo: "Cidades", Icone: "🏙️"},
		{Pagina: "localidades", Rotulo: "Localidades", Icone: "📍"},
		{Pagina: "tipos_eventos", Rotulo: "Tipos de Eventos", Icone: "🏷️"},
		{Pagina: "feriados", Rotulo: "Feriados", Icone: "🗓️"},
	}

	for i := range entradas {
		if entradas[i].Pagina == "adms" || entradas[i].Pagina == "atendentes" {
			entradas[i].Badge = pendentes
		}
	}

	return Menu{Itens: entradas}
}

// ModalAguardandoAprovacao é o aviso sem saída exibido a quem ainda
// não foi aprovado por um administrador.
func ModalAguardandoAprovacao() Modal {
	return Modal{
		Titulo: "Cadastro em Análise",
		Corpo: []string{
			"Obrigado pelo seu cadastro!",
			"Seu perfil foi enviado para análise por um administrador.",
			"Você será notificado assim que seu acesso for liberado. Por favor, aguarde.",
		},
		Fechavel: false,
	}
}

// ModalEventoDuplicado alerta sobre um evento já agendado.
func ModalEventoDuplicado(idOriginal int64) Modal {
	return Modal{
		Titulo: "Evento Duplicado Detectado",
		Corpo: []string{
			"Já existe um evento idêntico ou muito similar agendado.",
			"Deseja visualizar o evento original?",
		},
		Acoes: []Acao{
			{Tipo: AcaoLocalizarDuplicata, EventoID: idOriginal, Rotulo: "Localizar Duplicata"},
		},
		Fechavel: true,
	}
}
