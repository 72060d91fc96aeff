package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/linemk/order-service/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoadByPath_Success(t *testing.T) {
	// Устанавливаем обязательные переменные окружения
	os.Setenv("SUPABASE_URL", "https://example.supabase.co")
	os.Setenv("SUPABASE_ANON_KEY", "anon-key")
	defer os.Unsetenv("SUPABASE_URL")
	defer os.Unsetenv("SUPABASE_ANON_KEY")

	// Пример содержимого конфигурационного файла
	content := `
env: "local"
http_server:
  address: "localhost:4000"
  timeout: "4s"
  idle_timeout: "60s"
supabase:
  schema: "public"
cors:
  allowed_origin: "http://localhost:5173"
display:
  timezone: "Asia/Kolkata"
`
	// Создаем временный файл с конфигурацией
	tmpFile, err := os.CreateTemp("", "config_test_*.yaml")
	assert.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(content)
	assert.NoError(t, err)
	err = tmpFile.Close()
	assert.NoError(t, err)

	// Загружаем конфигурацию из временного файла
	cfg := config.MustLoadByPath(tmpFile.Name())

	// Проверяем, что конфигурация загружена корректно
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "localhost:4000", cfg.HTTPServer.Address)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, "https://example.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "anon-key", cfg.Supabase.AnonKey)
	assert.Equal(t, "public", cfg.Supabase.Schema)
	assert.Equal(t, "http://localhost:5173", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "Asia/Kolkata", cfg.Display.Timezone)
}

func TestMustLoadByPath_FileNotFound(t *testing.T) {
	// Ожидаем панику, если файла не существует
	assert.Panics(t, func() {
		config.MustLoadByPath("non_existent_config.yaml")
	})
}
