// Package sign реализует протокол подписи запросов платёжного API.
//
// Каждый исходящий запрос подписывается одноразовой подписью, которую
// сервер проверяет по общему секретному ключу. Подпись вычисляется над
// канонической строкой из метаданных запроса:
//
//	toSign = method + path + salt + timestamp + accessKey + secretKey + body
//
// Порядок конкатенации фиксирован контрактом API, разделителей между
// полями нет. Соль и timestamp генерируются заново на каждый запрос,
// состояние между вызовами не сохраняется — пакет безопасен для
// конкурентного использования.
package sign

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	serr "github.com/IvanChernomyrdin/go-paygate/internal/shared/errors"
)

const (
	// SaltSize — размер соли в байтах (до base64-кодирования).
	SaltSize = 16

	// ContentTypeJSON — значение Content-Type для всех запросов API.
	ContentTypeJSON = "application/json"
)

// Имена заголовков аутентификации.
//
// Используются и клиентом при отправке, и sandbox-сервером при проверке.
const (
	HeaderContentType = "Content-Type"
	HeaderAccessKey   = "access_key"
	HeaderSalt        = "salt"
	HeaderTimestamp   = "timestamp"
	HeaderSignature   = "signature"
)

// Credentials содержит ключи доступа мерчанта.
//
// AccessKey передаётся в заголовке каждого запроса.
// SecretKey никогда не передаётся в открытом виде: он используется
// только как ключ HMAC и как часть канонической строки.
//
// Оба ключа должны состоять из ASCII-символов — это требование
// протокола подписи (см. Signature).
type Credentials struct {
	AccessKey string
	SecretKey string
}

// NewSalt генерирует криптографически стойкую соль для одного запроса.
//
// Соль — это SaltSize случайных байт, закодированных в URL-safe base64
// без паддинга. Повторное использование соли между запросами ослабляет
// защиту от replay, поэтому соль всегда генерируется заново.
//
// Возвращает:
//   - закодированную соль
//   - ошибку при проблемах с генератором случайных чисел.
func NewSalt() (string, error) {
	b := make([]byte, SaltSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand salt: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Timestamp возвращает время t в формате подписи: целые секунды
// unix-эпохи (UTC) десятичной строкой.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UTC().Unix(), 10)
}

// Signature вычисляет подпись запроса по канонической строке.
//
// Алгоритм (контракт удалённого API, менять нельзя):
//  1. toSign = lower(method) + path + salt + timestamp + accessKey + secretKey + body;
//  2. HMAC-SHA256 с ключом secretKey над toSign;
//  3. digest кодируется в hex-строку в нижнем регистре;
//  4. СИМВОЛЫ hex-строки (не декодированные байты digest!) кодируются
//     в стандартный base64.
//
// Шаг 4 выглядит как двойное кодирование и отличается от привычного
// hex-decode-then-base64. Именно такую подпись ожидает сервер:
// "исправление" этого шага молча ломает совместимость, поэтому он
// закреплён регрессионным тестом с эталонным значением.
//
// Параметры:
//   - method: HTTP-метод в любом регистре ("POST" будет приведён к "post")
//   - path: путь эндпоинта с ведущим слэшем и подставленными path-параметрами,
//     без query string и хоста (например "/v1/checkout/abc123")
//   - salt, timestamp: значения, которые уйдут в одноимённые заголовки
//   - body: сериализованное тело запроса байт-в-байт как на проводе,
//     пустая строка для запросов без тела
//
// Ошибки:
//   - serr.ErrNotASCII, если секретный ключ или каноническая строка
//     содержат символы вне ASCII. Это фатальная ошибка конфигурации,
//     запрос с такой подписью отправлять нельзя.
func (c Credentials) Signature(method, path, salt, timestamp, body string) (string, error) {
	if !isASCII(c.SecretKey) {
		return "", fmt.Errorf("secret key: %w", serr.ErrNotASCII)
	}

	toSign := strings.ToLower(method) + path + salt + timestamp + c.AccessKey + c.SecretKey + body
	if !isASCII(toSign) {
		return "", fmt.Errorf("canonical string: %w", serr.ErrNotASCII)
	}

	mac := hmac.New(sha256.New, []byte(c.SecretKey))
	mac.Write([]byte(toSign))
	hexDigest := hex.EncodeToString(mac.Sum(nil))

	// hex-строка как байты, НЕ hex.Decode
	return base64.StdEncoding.EncodeToString([]byte(hexDigest)), nil
}

// Headers собирает полный набор заголовков аутентификации для одного запроса.
//
// Генерирует свежую соль, берёт timestamp от now и вычисляет подпись.
// Результат одноразовый: подпись привязана к паре соль/timestamp
// и к точному содержимому body.
//
// Возвращаемая map содержит ровно пять ключей:
// Content-Type, access_key, salt, timestamp, signature.
func (c Credentials) Headers(method, path, body string, now time.Time) (map[string]string, error) {
	salt, err := NewSalt()
	if err != nil {
		return nil, err
	}
	timestamp := Timestamp(now)

	signature, err := c.Signature(method, path, salt, timestamp, body)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		HeaderContentType: ContentTypeJSON,
		HeaderAccessKey:   c.AccessKey,
		HeaderSalt:        salt,
		HeaderTimestamp:   timestamp,
		HeaderSignature:   signature,
	}, nil
}

// Verify проверяет подпись входящего запроса.
//
// Пересчитывает подпись по тем же правилам, что и Signature, и сравнивает
// с переданной через hmac.Equal (постоянное время сравнения).
//
// Используется sandbox-сервером: клиент и проверяющая сторона работают
// через один и тот же код подписи.
func (c Credentials) Verify(method, path, salt, timestamp, body, signature string) (bool, error) {
	want, err := c.Signature(method, path, salt, timestamp, body)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(want), []byte(signature)), nil
}

// isASCII сообщает, состоит ли строка только из ASCII-символов.
//
// Протокол подписи кодирует строки в однобайтовой ASCII-совместимой
// кодировке, поэтому символы с кодом выше 127 недопустимы.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
