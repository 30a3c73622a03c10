// Package config отвечает за:
// - чтение sandbox.yaml
// - подстановку переменных окружения вида ${PAYGATE_SECRET_KEY}
// - проставление дефолтов
// - валидацию (чтобы sandbox не стартовал с пустыми ключами)
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config — корневая структура конфига sandbox-сервера.
type Config struct {
	Env    string       `yaml:"env"` // dev|stage|prod
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
}

// ServerConfig — настройки HTTP-сервера.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // время на graceful shutdown
}

// AuthConfig — ключи мерчанта, которые принимает sandbox.
//
// Подпись входящих запросов проверяется этими же ключами,
// что и на клиенте (общий пакет sign).
type AuthConfig struct {
	AccessKey string `yaml:"access_key"` // может содержать ${PAYGATE_ACCESS_KEY}
	SecretKey string `yaml:"secret_key"` // может содержать ${PAYGATE_SECRET_KEY}
	// MaxClockSkew — допустимое расхождение timestamp запроса с часами
	// sandbox. 0 отключает проверку (удобно в тестах).
	MaxClockSkew time.Duration `yaml:"max_clock_skew"`
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, проставляет дефолты и валидирует.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	// Подставляем переменные окружения в текст YAML:
	// secret_key: "${PAYGATE_SECRET_KEY}" -> secret_key: "реальное_значение"
	expanded := ExpandEnvStrict(string(raw))
	raw = []byte(expanded)

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	re := regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Auth.MaxClockSkew == 0 {
		cfg.Auth.MaxClockSkew = 5 * time.Minute
	}
}

// Validate проверяет, что конфиг заполнен корректно.
// Если что-то не так — возвращаем ошибку и sandbox НЕ стартует.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port некорректен: %d", c.Server.Port)
	}

	access := strings.TrimSpace(c.Auth.AccessKey)
	if access == "" {
		return errors.New("auth.access_key обязателен (через ${PAYGATE_ACCESS_KEY} или прямо строкой)")
	}
	secret := strings.TrimSpace(c.Auth.SecretKey)
	if secret == "" {
		return errors.New("auth.secret_key обязателен (через ${PAYGATE_SECRET_KEY} или прямо строкой)")
	}
	// Если ${VAR} не подставился — значит переменная окружения не задана
	if strings.Contains(access, "${") || strings.Contains(secret, "${") {
		return fmt.Errorf("auth содержит неподставленную переменную окружения")
	}

	return nil
}
