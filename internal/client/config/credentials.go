// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Конфигурация хранит ключи мерчанта (access/secret key) и базовый URL API,
// размещается в домашней директории пользователя в файле:
//
//	~/.paygate/credentials.json
//
// Поверх файла применяются переменные окружения PAYGATE_ACCESS_KEY,
// PAYGATE_SECRET_KEY и PAYGATE_BASE_URL (окружение имеет приоритет).
// Пакет предоставляет функции для получения пути по умолчанию, загрузки
// и сохранения конфигурации в JSON формате.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	serr "github.com/IvanChernomyrdin/go-paygate/internal/shared/errors"
)

// Имена переменных окружения, переопределяющих файл конфигурации.
const (
	EnvAccessKey = "PAYGATE_ACCESS_KEY"
	EnvSecretKey = "PAYGATE_SECRET_KEY"
	EnvBaseURL   = "PAYGATE_BASE_URL"
)

// Credentials содержит ключи мерчанта, используемые CLI-клиентом.
//
// AccessKey уходит в заголовок каждого запроса.
// SecretKey используется только для вычисления подписи и никогда
// не передаётся по сети в открытом виде.
// BaseURL — базовый адрес платёжного API (например адрес sandbox).
type Credentials struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	BaseURL   string `json:"base_url,omitempty"`
}

// DefaultPath возвращает путь к конфигурационному файлу в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.paygate/credentials.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".paygate", "credentials.json"), nil
}

// Load загружает конфигурацию из указанного файла и применяет
// переменные окружения.
//
// Если файл не существует, возвращает конфигурацию только из окружения
// без ошибки. Если файл существует, но содержит некорректный JSON,
// возвращает ошибку.
func Load(path string) (*Credentials, error) {
	var c Credentials

	b, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// дефолтный конфиг, если файла нет
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}

	// окружение имеет приоритет над файлом
	if v := os.Getenv(EnvAccessKey); v != "" {
		c.AccessKey = v
	}
	if v := os.Getenv(EnvSecretKey); v != "" {
		c.SecretKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}

	return &c, nil
}

// Save сохраняет конфигурацию в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл конфигурации записывается с правами 0600: в нём лежит секретный ключ.
func Save(path string, c *Credentials) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Validate проверяет, что ключи мерчанта заполнены.
//
// Вызывается перед выполнением операций, требующих подписи.
func (c *Credentials) Validate() error {
	if c.AccessKey == "" {
		return serr.ErrAccessKeyEmpty
	}
	if c.SecretKey == "" {
		return serr.ErrSecretKeyEmpty
	}
	return nil
}
