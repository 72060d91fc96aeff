package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `yaml:"env" env-default:"development"` // environment
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Supabase   SupabaseConfig   `yaml:"supabase"`
	CORS       CORSConfig       `yaml:"cors"`
	Display    DisplayConfig    `yaml:"display"`
}

// HTTPServerConfig — структура http сервера
type HTTPServerConfig struct {
	Address     string        `yaml:"address" env-default:"localhost:4000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// SupabaseConfig — подключение к удалённой базе. URL и ключ — секреты,
// приходят только из окружения; без них процесс не стартует.
type SupabaseConfig struct {
	URL     string `yaml:"-" env:"SUPABASE_URL" env-required:"true"`
	AnonKey string `yaml:"-" env:"SUPABASE_ANON_KEY" env-required:"true"`
	Schema  string `yaml:"schema" env-default:"public"`
}

// CORSConfig — политика кросс-доменных запросов.
// Разрешён ровно один origin, без wildcard.
type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin" env:"CORS_ALLOWED_ORIGIN" env-default:"http://localhost:5173"`
}

// DisplayConfig — представление данных в ответах.
type DisplayConfig struct {
	// Timezone — часовой пояс, в котором отдаётся время создания заказов.
	Timezone string `yaml:"timezone" env-default:"Asia/Kolkata"`
}

// MustLoad - если не загружаем - паникуем
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("CONFIG_PATH not exists")
	}
	return MustLoadByPath(configPath)
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can't read config file %s: %v", configPath, err)
	}

	return &cfg
}
