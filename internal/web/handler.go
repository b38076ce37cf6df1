package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/admvalente/agenda/internal/app"
	"github.com/admvalente/agenda/internal/calendario"
	"github.com/admvalente/agenda/internal/config"
	"github.com/admvalente/agenda/internal/supabase"
	"github.com/admvalente/agenda/internal/view"
	webmiddleware "github.com/admvalente/agenda/internal/web/middleware"
)

// Deps agrupa os colaboradores do facade injetados na construção.
type Deps struct {
	State  *app.State
	Painel *Painel
	Gate   *app.Gate
	Router *app.Router
	Roster *app.Roster
	Client *supabase.Client
}

// Handler traduz requisições do shell em operações do core.
type Handler struct {
	state  *app.State
	painel *Painel
	gate   *app.Gate
	router *app.Router
	roster *app.Roster
	client *supabase.Client

	// Os seletores são overlays transientes; o mutex serializa o
	// ciclo abrir→interagir→fechar como o event loop fazia na web.
	mu          sync.Mutex
	seletorData *calendario.SeletorData
	seletorHora *calendario.SeletorHora
}

// NewRouter devolve o roteador HTTP do facade configurado.
func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	h := &Handler{
		state:       deps.State,
		painel:      deps.Painel,
		gate:        deps.Gate,
		router:      deps.Router,
		roster:      deps.Roster,
		client:      deps.Client,
		seletorData: calendario.NewSeletorData(deps.Painel.Alvo("data")),
		seletorHora: calendario.NewSeletorHora(deps.Painel.Alvo("hora")),
	}

	limiter := webmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(webmiddleware.Logging)
	r.Use(webmiddleware.Recover)
	r.Use(webmiddleware.CORS(cfg.AllowOrigins))
	r.Use(webmiddleware.IPRateLimit(limiter))

	r.Get("/health", h.Health)

	r.Route("/api", func(api chi.Router) {
		api.Get("/estado", h.GetEstado)
		api.Post("/login", h.PostLogin)
		api.Post("/sessao", h.PostSessao)
		api.Post("/logout", h.PostLogout)
		api.Post("/navegar", h.PostNavegar)
		api.Post("/cadastro", h.PostCadastro)

		api.Get("/usuarios", h.GetUsuarios)
		api.Post("/usuarios/{id}/nivel", h.PostNivel)
		api.Delete("/usuarios/{id}", h.DeleteUsuario)

		api.Post("/eventos/verificar-duplicata", h.PostVerificarDuplicata)

		api.Get("/calendario", h.GetCalendario)
		api.Get("/horarios", h.GetHorarios)
		api.Route("/seletor/data", func(sel chi.Router) {
			sel.Post("/", h.AbrirSeletorData)
			sel.Get("/", h.GetSeletorData)
			sel.Post("/navegar", h.NavegarSeletorData)
			sel.Post("/selecionar", h.SelecionarData)
			sel.Delete("/", h.FecharSeletorData)
		})
		api.Route("/seletor/hora", func(sel chi.Router) {
			sel.Post("/", h.AbrirSeletorHora)
			sel.Post("/selecionar", h.SelecionarHora)
			sel.Delete("/", h.FecharSeletorHora)
		})
	})

	return r
}

// Health responde a verificação de vida do facade.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetEstado devolve o snapshot corrente da apresentação.
func (h *Handler) GetEstado(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.painel.Snapshot())
}

// PostLogin dispara o magic link para o e-mail informado.
func (h *Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	h.gate.Login(r.Context(), payload.Email)
	WriteJSON(w, http.StatusOK, h.painel.Snapshot())
}

// PostSessao adota o access token vindo do redirect do magic link.
func (h *Handler) PostSessao(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	if _, err := h.client.SetSessionFromToken(payload.AccessToken); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "token de acesso inválido")
		return
	}
	WriteJSON(w, http.StatusOK, h.painel.Snapshot())
}

// PostLogout encerra a sessão corrente.
func (h *Handler) PostLogout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout(r.Context())
	WriteJSON(w, http.StatusOK, h.painel.Snapshot())
}

// PostNavegar troca a página corrente.
func (h *Handler) PostNavegar(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Pagina string `json:"pagina"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	h.router.NavigateTo(r.Context(), payload.Pagina)
	WriteJSON(w, http.StatusOK, h.painel.Snapshot())
}

// PostCadastro completa o cadastro inicial do usuário da sessão.
func (h *Handler) PostCadastro(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Nome     string `json:"nome"`
		Telefone string `json:"telefone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	h.gate.Cadastro(r.Context(), payload.Nome, payload.Telefone)
	WriteJSON(w, http.StatusOK, h.painel.Snapshot())
}

// GetUsuarios aplica a busca por nome ou e-mail sobre a tela de
// usuários corrente, sem nova ida ao backend.
func (h *Handler) GetUsuarios(w http.ResponseWriter, r *http.Request) {
	snap := h.painel.Snapshot()
	if snap.View.Usuarios == nil {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "tela de usuários não está montada")
		return
	}

	cards := view.FiltrarUsuarios(snap.View.Usuarios.Cards, r.URL.Query().Get("busca"))
	WriteJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

// PostNivel muda o nível de acesso de um atendente.
func (h *Handler) PostNivel(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id de usuário inválido")
		return
	}

	var payload struct {
		Nivel supabase.NivelAcesso `json:"nivel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !payload.Nivel.Valido() {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "nível de acesso inválido")
		return
	}

	h.roster.Autorizar(r.Context(), userID, payload.Nivel)
	WriteJSON(w, http.StatusOK, h.painel.Snapshot())
}

// DeleteUsuario bloqueia/remove um atendente.
func (h *Handler) DeleteUsuario(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id de usuário inválido")
		return
	}

	h.roster.Remover(r.Context(), userID)
	WriteJSON(w, http.StatusOK, h.painel.Snapshot())
}

// PostVerificarDuplicata confere se já existe um evento na mesma data,
// hora e localidade. Havendo um, o modal de duplicidade aponta para o
// evento original. A checagem roda antes de qualquer gravação.
func (h *Handler) PostVerificarDuplicata(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Data       string `json:"data"`
		Hora       string `json:"hora"`
		Localidade string `json:"localidade"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}
	if payload.Data == "" || payload.Hora == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "data e hora são obrigatórias")
		return
	}

	var original *supabase.Evento
	h.state.Lock()
	for i, ev := range h.state.Eventos {
		if ev.DataEvento == payload.Data &&
			strings.HasPrefix(ev.HoraEvento, payload.Hora) &&
			strings.EqualFold(ev.Localidade, payload.Localidade) {
			original = &h.state.Eventos[i]
			break
		}
	}
	h.state.Unlock()

	if original == nil {
		WriteJSON(w, http.StatusOK, map[string]any{"duplicado": false})
		return
	}

	h.painel.ShowModal(view.ModalEventoDuplicado(original.ID))
	WriteJSON(w, http.StatusOK, map[string]any{"duplicado": true, "evento_id": original.ID})
}

// GetCalendario renderiza a grade de um mês arbitrário, fora do ciclo
// do seletor. mes segue a convenção 0-11 do calendário.
func (h *Handler) GetCalendario(w http.ResponseWriter, r *http.Request) {
	ano, errAno := strconv.Atoi(r.URL.Query().Get("ano"))
	mes, errMes := strconv.Atoi(r.URL.Query().Get("mes"))
	if errAno != nil || errMes != nil || ano < 1 || mes < 0 || mes > 11 {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "ano ou mês inválido")
		return
	}

	grade := calendario.Render(ano, mes, h.opcoesCalendario(r.URL.Query().Get("selecionada")))
	WriteJSON(w, http.StatusOK, grade)
}

// GetHorarios lista os horários fixos do seletor de hora.
func (h *Handler) GetHorarios(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"horarios": calendario.Horarios()})
}

// opcoesCalendario monta as opções de render a partir do estado.
func (h *Handler) opcoesCalendario(selecionada string) calendario.Options {
	h.state.Lock()
	defer h.state.Unlock()

	feriados := make([]string, 0, len(h.state.Feriados))
	for data := range h.state.Feriados {
		feriados = append(feriados, data)
	}

	return calendario.Options{
		Eventos:     h.state.Eventos,
		Feriados:    feriados,
		Selecionada: selecionada,
	}
}

// AbrirSeletorData abre o overlay do calendário.
func (h *Handler) AbrirSeletorData(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Inicial string `json:"inicial"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	h.mu.Lock()
	h.seletorData.Open(payload.Inicial, h.opcoesCalendario(payload.Inicial))
	grade := h.seletorData.Grade()
	h.mu.Unlock()

	WriteJSON(w, http.StatusOK, grade)
}

// GetSeletorData devolve a grade do mês sob o cursor.
func (h *Handler) GetSeletorData(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.seletorData.Aberto() {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "seletor de data fechado")
		return
	}
	WriteJSON(w, http.StatusOK, h.seletorData.Grade())
}

// NavegarSeletorData move o cursor um mês para trás ou para frente.
func (h *Handler) NavegarSeletorData(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Direcao string `json:"direcao"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.seletorData.Aberto() {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "seletor de data fechado")
		return
	}

	switch payload.Direcao {
	case "anterior":
		h.seletorData.PrevMonth()
	case "proximo":
		h.seletorData.NextMonth()
	default:
		WriteError(w, http.StatusBadRequest, "VALIDATION", "direção desconhecida")
		return
	}
	WriteJSON(w, http.StatusOK, h.seletorData.Grade())
}

// SelecionarData confirma um dia do mês exibido. Dias fora do mês são
// ignorados e o overlay permanece aberto.
func (h *Handler) SelecionarData(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Data string `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	h.mu.Lock()
	selecionado := h.seletorData.SelectDay(payload.Data)
	h.mu.Unlock()

	WriteJSON(w, http.StatusOK, map[string]bool{"selecionado": selecionado})
}

// FecharSeletorData descarta o overlay sem seleção.
func (h *Handler) FecharSeletorData(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.seletorData.Close()
	h.mu.Unlock()
	WriteJSON(w, http.StatusOK, map[string]bool{"fechado": true})
}

// AbrirSeletorHora abre o overlay de horários.
func (h *Handler) AbrirSeletorHora(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.seletorHora.Open()
	h.mu.Unlock()
	WriteJSON(w, http.StatusOK, map[string]any{"horarios": calendario.Horarios()})
}

// SelecionarHora confirma um dos horários fixos.
func (h *Handler) SelecionarHora(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Horario string `json:"horario"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	h.mu.Lock()
	selecionado := h.seletorHora.Select(payload.Horario)
	h.mu.Unlock()

	WriteJSON(w, http.StatusOK, map[string]bool{"selecionado": selecionado})
}

// FecharSeletorHora descarta o overlay de horários.
func (h *Handler) FecharSeletorHora(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.seletorHora.Close()
	h.mu.Unlock()
	WriteJSON(w, http.StatusOK, map[string]bool{"fechado": true})
}
