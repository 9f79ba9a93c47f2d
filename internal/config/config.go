// Package config carga la configuración de petpal: defaults, YAML opcional y
// variables PETPAL_* (en ese orden de precedencia, de menor a mayor).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"petpal/internal/ports/kv"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "PETPAL_"

	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"

	maxConfigFileSize = 1024 * 1024
)

type Config struct {
	App     string        `koanf:"app"`
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	Log     LogConfig     `koanf:"log"`
}

type ServerConfig struct {
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type StorageConfig struct {
	Backend   string `koanf:"backend"`   // memory | file | postgres
	Path      string `koanf:"path"`      // backend file
	DSN       string `koanf:"dsn"`       // backend postgres
	Namespace string `koanf:"namespace"` // prefijo de keys
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Defaults: server en :8080, store en memoria, keys con prefijo "petpal-".
func Defaults() Config {
	return Config{
		App: "petpal",
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Backend:   BackendMemory,
			Path:      DefaultStorePath(),
			Namespace: kv.DefaultNamespace,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultStorePath: ~/.config/petpal/store.json (o ./petpal-store.json sin HOME).
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "petpal-store.json"
	}
	return filepath.Join(home, ".config", "petpal", "store.json")
}

// Load lee path (si no es vacío y existe) y luego el entorno.
//
//	PETPAL_SERVER_PORT=9090          -> server.port
//	PETPAL_STORAGE_BACKEND=file      -> storage.backend
//	PETPAL_SERVER_READ_TIMEOUT=3s    -> server.read_timeout
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		if content != nil {
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	if err := loadEnv(k); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes", info.Size())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// loadEnv mapea PETPAL_SECTION_FIELD_NAME -> section.field_name (sólo el primer "_" separa).
func loadEnv(k *koanf.Koanf) error {
	return k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil)
}

func (c *Config) normalize() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendFile:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return errors.New("storage.path required for file backend")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("storage.dsn required for postgres backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (memory|file|postgres)", c.Storage.Backend)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (text|json)", c.Log.Format)
	}
	return nil
}

// Addr para http.Server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
