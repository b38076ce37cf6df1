package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SignInWithEmail solicita o envio de um magic link para o e-mail informado.
func (c *Client) SignInWithEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("supabase: e-mail vazio")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/otp", map[string]any{
		"email":       email,
		"create_user": true,
	})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// SetSessionFromToken adota o access token devolvido pelo magic link,
// extrai a identidade das claims e notifica os inscritos com SIGNED_IN.
func (c *Client) SetSessionFromToken(accessToken string) (*Sessao, error) {
	sessao, err := sessaoFromToken(accessToken)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sessao = sessao
	c.mu.Unlock()

	c.emit(EventSignedIn, sessao)
	return sessao, nil
}

// RestoreSession readota um token persistido sem emitir eventos.
// Usado na partida do processo antes do primeiro paint.
func (c *Client) RestoreSession(accessToken string) error {
	sessao, err := sessaoFromToken(accessToken)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.sessao = sessao
	c.mu.Unlock()
	return nil
}

// CurrentSession valida a sessão corrente contra o backend.
// Sem sessão local devolve (nil, nil), que não é um erro.
func (c *Client) CurrentSession(ctx context.Context) (*Sessao, error) {
	c.mu.Lock()
	sessao := c.sessao
	c.mu.Unlock()

	if sessao == nil {
		return nil, nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := c.do(req, &payload); err != nil {
		return nil, fmt.Errorf("sessão inválida: %w", err)
	}

	return sessao, nil
}

// SignOut encerra a sessão e notifica os inscritos com SIGNED_OUT.
// A revogação remota é melhor-esforço; a sessão local sempre é descartada.
func (c *Client) SignOut(ctx context.Context) {
	c.mu.Lock()
	had := c.sessao != nil
	c.mu.Unlock()

	if had {
		if req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/logout", nil); err == nil {
			_ = c.do(req, nil)
		}
	}

	c.mu.Lock()
	c.sessao = nil
	c.mu.Unlock()

	c.emit(EventSignedOut, nil)
}

// sessaoFromToken extrai sub e email das claims do access token.
// A assinatura não é conferida: o token veio do próprio GoTrue e toda
// autorização de verdade acontece no backend.
func sessaoFromToken(accessToken string) (*Sessao, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, errors.New("supabase: access token vazio")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("supabase: token inválido: %w", err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("supabase: token sem subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("supabase: subject não é um uuid: %w", err)
	}

	email, _ := claims["email"].(string)

	return &Sessao{UserID: userID, Email: email, AccessToken: accessToken}, nil
}
