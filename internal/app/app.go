package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/linemk/order-service/internal/config"
	"github.com/supabase-community/postgrest-go"
)

// App собирает общие для процесса зависимости: конфиг, логгер и клиент
// удалённой базы.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *postgrest.Client
}

// NewApp создаёт PostgREST-клиент для настроенного проекта Supabase.
// Клиент создаётся один раз и разделяется всеми репозиториями.
func NewApp(log *slog.Logger, cfg *config.Config) (*App, error) {
	restURL := strings.TrimRight(cfg.Supabase.URL, "/") + "/rest/v1"

	db := postgrest.NewClient(restURL, cfg.Supabase.Schema, map[string]string{
		"apikey":        cfg.Supabase.AnonKey,
		"Authorization": "Bearer " + cfg.Supabase.AnonKey,
	})
	if db.ClientError != nil {
		return nil, fmt.Errorf("failed to build database client: %w", db.ClientError)
	}

	app := &App{
		Config: cfg,
		Logger: log,
		DB:     db,
	}

	return app, nil
}
