package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config agrupa todo lo que el servicio lee del entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"3001"`

	// Base de la API remota (PokeAPI o compatible).
	APIURL           string        `env:"API_URL" envDefault:"https://pokeapi.co/api/v2"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	FetchConcurrency int           `env:"FETCH_CONCURRENCY" envDefault:"16"`

	// Storage: DB_DSN => Postgres, SQLITE_PATH => SQLite, ninguno => in-memory.
	DBDSN      string `env:"DB_DSN"`
	SQLitePath string `env:"SQLITE_PATH"`
	// DB_RESET borra y recrea el schema al arrancar.
	DBReset bool `env:"DB_RESET" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"pokemon-catalog"`
}

// Addr devuelve la dirección de escucha para http.Server.
func (c Config) Addr() string {
	p := strings.TrimSpace(c.Port)
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

// Load carga envFile (si existe) y después parsea el entorno.
// Un .env ausente no es error: en contenedores todo viene por env.
func Load(envFile string) (Config, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 1
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		return Config{}, errors.New("API_URL is required")
	}
	return cfg, nil
}
