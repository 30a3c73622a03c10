// Package api содержит HTTP-клиент платёжного API.
//
// Клиент инкапсулирует базовый URL, ключи мерчанта и транспорт,
// предоставляя по одному методу на каждую операцию API
// (создание checkout, статус checkout, создание покупателя,
// привязка способа оплаты).
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/");
//   - каждый запрос подписывается заголовками access_key/salt/timestamp/signature
//     (см. пакет sign), подпись одноразовая;
//   - тело запроса сериализуется ровно один раз: подписываются и отправляются
//     одни и те же байты, повторной сериализации между подписью и отправкой нет;
//   - успехом считается строго HTTP 200, любой другой статус превращается
//     в *StatusError с кодом и статусной частью ответа;
//   - сетевые ошибки и ошибки декодирования возвращаются обёрнутыми,
//     результат операции при любой ошибке — nil;
//   - клиент не делает ретраев: ошибка сообщается один раз, решение об
//     повторе за вызывающей стороной.
//
// Клиент не хранит изменяемого состояния кроме read-only конфигурации,
// поэтому безопасен для конкурентного использования без блокировок.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/sign"
	serr "github.com/IvanChernomyrdin/go-paygate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
)

// Doer — минимальный контракт HTTP-транспорта.
//
// Транспорт инжектируется снаружи: таймауты, пулы соединений и TLS —
// зона ответственности транспорта, клиент ими не управляет.
// В тестах сюда подставляется httptest-клиент или фейк.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError — ошибка "сервер ответил не 200".
//
// Поля:
//   - Code: HTTP-статус ответа
//   - Status: статусная часть конверта ответа (может быть zero-value,
//     если тело ошибки не удалось декодировать)
//
// Извлекается из ошибки операции через errors.As.
type StatusError struct {
	Code   int
	Status models.Status
}

// Error реализует интерфейс error.
func (e *StatusError) Error() string {
	if e.Status.ErrorCode != nil {
		return fmt.Sprintf("payment api: http %d, error_code %s", e.Code, *e.Status.ErrorCode)
	}
	return fmt.Sprintf("payment api: http %d", e.Code)
}

// Client реализует HTTP-клиент платёжного API.
//
// Поля:
//   - baseURL: базовый адрес API без завершающего слэша.
//   - creds: ключи мерчанта (access key + secret key), неизменяемы
//     на протяжении жизни клиента.
//   - http: инжектированный транспорт.
//   - log: опциональный логгер исходящих вызовов.
type Client struct {
	baseURL string
	creds   sign.Credentials
	http    Doer
	log     *logger.HTTPLogger
}

// Option настраивает создаваемый Client.
type Option func(*Client)

// WithHTTPClient подменяет HTTP-транспорт клиента.
//
// Таймауты и TLS задаются транспортом; клиент сам таймаутов не навязывает.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithLogger включает логирование исходящих вызовов (метод, путь,
// статус, operation_id, длительность).
func WithLogger(l *logger.HTTPLogger) Option {
	return func(c *Client) { c.log = l }
}

// New создаёт новый клиент платёжного API.
//
// Параметры:
//   - baseURL: базовый адрес API (например "https://sandboxapi.example.com");
//     завершающие "/" обрезаются;
//   - accessKey, secretKey: ключи мерчанта из личного кабинета.
//
// По умолчанию используется http.Client с таймаутом 15 секунд;
// транспорт можно подменить через WithHTTPClient.
func New(baseURL, accessKey, secretKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   sign.Credentials{AccessKey: accessKey, SecretKey: secretKey},
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call выполняет одну подписанную операцию API.
//
// Параметры:
//   - method: HTTP-метод ("POST", "GET", ...);
//   - path: путь эндпоинта с ведущим слэшем, без хоста и query string;
//   - reqBody: объект для сериализации в JSON; nil — запрос без тела;
//   - out: указатель для декодирования поля data ответа; nil — data не декодируется.
//
// Поведение:
//   - тело сериализуется один раз, та же строка уходит в подпись и на провод;
//   - заголовки подписи генерируются на момент вызова (свежие соль и timestamp);
//   - HTTP 200: конверт декодируется, data раскладывается в out;
//   - любой другой статус: возвращается *StatusError (конверт декодируется
//     по возможности, ради error_code/operation_id);
//   - сетевая ошибка/ошибка декодирования: возвращается обёрнутая ошибка.
func (c *Client) call(method, path string, reqBody, out any) error {
	body := ""
	var payload []byte
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = b
		body = string(b)
	}

	headers, err := c.creds.Headers(method, path, body, time.Now())
	if err != nil {
		return err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(strings.ToUpper(method), c.baseURL+path, reader)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.logCall(method, path, 0, "", start)
		return fmt.Errorf("call %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.logCall(method, path, res.StatusCode, "", start)
		return fmt.Errorf("read response: %w", err)
	}

	// конверт декодируем даже для ошибочных статусов:
	// error_code и operation_id нужны для диагностики
	var env models.Envelope
	envErr := json.Unmarshal(raw, &env)

	c.logCall(method, path, res.StatusCode, env.Status.OperationID, start)

	if res.StatusCode != http.StatusOK {
		return &StatusError{Code: res.StatusCode, Status: env.Status}
	}
	if envErr != nil {
		return fmt.Errorf("%w: %v", serr.ErrBadResponse, envErr)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: %v", serr.ErrBadResponse, err)
		}
	}
	return nil
}

// logCall пишет лог вызова, если логгер настроен.
func (c *Client) logCall(method, path string, status int, operationID string, start time.Time) {
	if c.log == nil {
		return
	}
	duration := time.Since(start).Seconds() * 1000
	c.log.LogCall(strings.ToLower(method), path, status, operationID, duration)
}
