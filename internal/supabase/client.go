package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client encapsula chamadas à API do Supabase (GoTrue + PostgREST).
type Client struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string

	mu          sync.Mutex
	sessao      *Sessao
	subscribers map[int]func(AuthEvent, *Sessao)
	nextSubID   int
}

// Config descreve credenciais essenciais para o cliente.
type Config struct {
	URL     string
	AnonKey string
}

// New cria um novo cliente utilizando a chave anônima do projeto.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("supabase: url obrigatória")
	}
	if strings.TrimSpace(cfg.AnonKey) == "" {
		return nil, errors.New("supabase: anon key obrigatória")
	}

	return &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		baseURL:     strings.TrimRight(cfg.URL, "/"),
		anonKey:     cfg.AnonKey,
		subscribers: make(map[int]func(AuthEvent, *Sessao)),
	}, nil
}

// Subscription é um registro cancelável de interesse em eventos de auth.
type Subscription struct {
	cancel func()
	once   sync.Once
}

// Cancel remove a inscrição. Seguro chamar mais de uma vez.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// Subscribe registra um callback para eventos de autenticação.
// O callback roda na goroutine que disparou o evento.
func (c *Client) Subscribe(fn func(AuthEvent, *Sessao)) *Subscription {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return &Subscription{cancel: func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}}
}

func (c *Client) emit(event AuthEvent, sessao *Sessao) {
	c.mu.Lock()
	fns := make([]func(AuthEvent, *Sessao), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(event, sessao)
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	endpoint := c.baseURL + path

	var req *http.Request
	var err error
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		req, err = http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	token := c.anonKey
	if c.sessao != nil {
		token = c.sessao.AccessToken
	}
	c.mu.Unlock()

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error() != "" {
			return fmt.Errorf("supabase: status %d: %s", resp.StatusCode, apiErr.Error())
		}
		return fmt.Errorf("supabase: status %d", resp.StatusCode)
	}

	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

type apiError struct {
	Message   string `json:"message"`
	Msg       string `json:"msg"`
	ErrorDesc string `json:"error_description"`
}

func (a apiError) Error() string {
	switch {
	case strings.TrimSpace(a.Message) != "":
		return a.Message
	case strings.TrimSpace(a.Msg) != "":
		return a.Msg
	default:
		return strings.TrimSpace(a.ErrorDesc)
	}
}
