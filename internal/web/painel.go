package web

import (
	"sync"
	"time"

	"github.com/admvalente/agenda/internal/calendario"
	"github.com/admvalente/agenda/internal/view"
)

// Campo é um input customizado do formulário de evento: o texto
// exibido e o valor de apoio andam juntos.
type Campo struct {
	Texto string `json:"texto"`
	Valor string `json:"valor"`
}

// Painel implementa app.Surface acumulando o último estado de
// apresentação. O shell no navegador consulta o snapshot e desenha;
// nenhum componente do core sabe como o desenho acontece.
type Painel struct {
	mu        sync.Mutex
	view      view.View
	chrome    view.Chrome
	filtro    view.FiltroStatus
	menu      view.Menu
	modal     *view.Modal
	banner    *view.Banner
	bannerAte time.Time
	campos    map[string]Campo
}

// NewPainel cria a superfície vazia.
func NewPainel() *Painel {
	return &Painel{campos: make(map[string]Campo)}
}

// Clear esvazia a área de render, como o innerHTML='' da versão web.
func (p *Painel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = view.View{}
	p.filtro = view.FiltroStatus{}
}

func (p *Painel) SetView(v view.View) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = v
}

func (p *Painel) SetChrome(c view.Chrome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chrome = c
}

func (p *Painel) SetFiltro(f view.FiltroStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filtro = f
}

func (p *Painel) SetMenu(m view.Menu) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menu = m
}

func (p *Painel) ShowModal(m view.Modal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modal = &m
}

func (p *Painel) HideModal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modal = nil
}

// ShowBanner exibe a notificação pelo tempo fixo do view model.
func (p *Painel) ShowBanner(b view.Banner) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = &b
	p.bannerAte = time.Now().Add(b.Duracao)
}

// Snapshot é o estado de apresentação servido ao shell.
type Snapshot struct {
	View   view.View         `json:"view"`
	Chrome view.Chrome       `json:"chrome"`
	Filtro view.FiltroStatus `json:"filtro"`
	Menu   view.Menu         `json:"menu"`
	Modal  *view.Modal       `json:"modal,omitempty"`
	Banner *view.Banner      `json:"banner,omitempty"`
	Campos map[string]Campo  `json:"campos"`
}

// Snapshot devolve uma cópia consistente do estado de apresentação.
// Banners vencidos são descartados aqui, o que dá ao shell a
// auto-dispensa após a duração fixa.
func (p *Painel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.banner != nil && time.Now().After(p.bannerAte) {
		p.banner = nil
	}

	campos := make(map[string]Campo, len(p.campos))
	for nome, campo := range p.campos {
		campos[nome] = campo
	}

	return Snapshot{
		View:   p.view,
		Chrome: p.chrome,
		Filtro: p.filtro,
		Menu:   p.menu,
		Modal:  p.modal,
		Banner: p.banner,
		Campos: campos,
	}
}

// Alvo devolve um escritor para o campo nomeado, usado pelos seletores
// de data e hora.
func (p *Painel) Alvo(nome string) calendario.Alvo {
	return alvoCampo{painel: p, nome: nome}
}

type alvoCampo struct {
	painel *Painel
	nome   string
}

func (a alvoCampo) Escrever(texto, valor string) {
	a.painel.mu.Lock()
	defer a.painel.mu.Unlock()
	a.painel.campos[a.nome] = Campo{Texto: texto, Valor: valor}
}
