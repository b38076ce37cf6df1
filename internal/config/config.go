package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	Port            int
	SupabaseURL     string
	SupabaseAnonKey string
	AllowOrigins    []string
	CacheDir        string
	BrasilAPIURL    string
	RateLimitPublic RateLimitConfig
}

// RateLimitConfig representa limites simples para throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	cfg.SupabaseURL = strings.TrimRight(strings.TrimSpace(getEnv("SUPABASE_URL", "")), "/")
	if cfg.SupabaseURL == "" {
		return nil, errors.New("SUPABASE_URL obrigatório")
	}

	cfg.SupabaseAnonKey = strings.TrimSpace(getEnv("SUPABASE_ANON_KEY", ""))
	if cfg.SupabaseAnonKey == "" {
		return nil, errors.New("SUPABASE_ANON_KEY obrigatório")
	}

	allowOrigins := strings.Split(getEnv("ALLOW_ORIGINS", ""), ",")
	cfg.AllowOrigins = nil
	for _, origin := range allowOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	cfg.CacheDir = strings.TrimSpace(getEnv("CACHE_DIR", ""))
	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.New("CACHE_DIR obrigatório quando o cache do usuário não está disponível")
		}
		cfg.CacheDir = filepath.Join(base, "agenda-valente")
	}

	cfg.BrasilAPIURL = strings.TrimRight(strings.TrimSpace(getEnv("BRASILAPI_URL", "https://brasilapi.com.br")), "/")

	cfg.RateLimitPublic = RateLimitConfig{RequestsPerSecond: 10, Burst: 20}

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}
