package feriados

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/admvalente/agenda/internal/supabase"
)

const defaultBrasilAPIBase = "https://brasilapi.com.br"

// BrasilAPI consulta o feed público de feriados nacionais.
// As chamadas são espaçadas por um limiter para não abusar do feed.
type BrasilAPI struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewBrasilAPI cria o cliente. baseURL vazia usa o endpoint público.
func NewBrasilAPI(baseURL string) *BrasilAPI {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBrasilAPIBase
	}
	return &BrasilAPI{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(1), 2),
	}
}

// Nacionais busca os feriados nacionais de um ano.
func (b *BrasilAPI) Nacionais(ctx context.Context, ano int) ([]supabase.Feriado, error) {
	if ano <= 0 {
		return nil, errors.New("brasilapi: ano inválido")
	}
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/feriados/v1/%d", b.baseURL, ano)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brasilapi: status %d", resp.StatusCode)
	}

	var payload []struct {
		Date string `json:"date"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	feriados := make([]supabase.Feriado, 0, len(payload))
	for _, f := range payload {
		feriados = append(feriados, supabase.Feriado{
			DataFeriado: f.Date,
			NomeFeriado: f.Name,
			TipoFeriado: TipoNacional,
		})
	}
	return feriados, nil
}
