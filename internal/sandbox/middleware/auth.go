// Package middleware содержит HTTP middleware sandbox-сервера.
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/sign"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/utils"
)

// SignatureVerifier инкапсулирует параметры проверки подписи запросов.
//
// Используется в HTTP middleware для:
//   - проверки access_key
//   - проверки свежести timestamp (допуск MaxSkew)
//   - пересчёта и сравнения подписи по канонической строке
//
// Проверка выполняется тем же кодом, которым клиент подписывает
// запросы (пакет sign), поэтому клиент и sandbox не могут разойтись
// в деталях протокола.
type SignatureVerifier struct {
	Creds   sign.Credentials
	MaxSkew time.Duration // 0 отключает проверку timestamp
}

// NewSignatureVerifier создаёт новый SignatureVerifier с заданными параметрами.
func NewSignatureVerifier(creds sign.Credentials, maxSkew time.Duration) *SignatureVerifier {
	return &SignatureVerifier{Creds: creds, MaxSkew: maxSkew}
}

// AuthMiddleware возвращает HTTP middleware для проверки подписи запросов.
//
// Middleware:
//   - ожидает заголовки access_key, salt, timestamp, signature
//   - читает тело запроса целиком (и восстанавливает его для хендлера)
//   - пересчитывает подпись над method+path+salt+timestamp+keys+body
//   - сравнивает с переданной подписью
//
// В случае ошибки возвращает HTTP 401 Unauthorized с конвертом
// {"status": {"error_code": "UNAUTHENTICATED", ...}}.
func (v *SignatureVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessKey := r.Header.Get(sign.HeaderAccessKey)
			salt := r.Header.Get(sign.HeaderSalt)
			timestamp := r.Header.Get(sign.HeaderTimestamp)
			signature := r.Header.Get(sign.HeaderSignature)

			if accessKey == "" || salt == "" || timestamp == "" || signature == "" {
				unauthorized(w, "missing auth headers")
				return
			}
			if accessKey != v.Creds.AccessKey {
				unauthorized(w, "unknown access key")
				return
			}
			if !v.timestampFresh(timestamp) {
				unauthorized(w, "timestamp out of range")
				return
			}

			// тело нужно и для проверки подписи, и хендлеру
			body, err := io.ReadAll(r.Body)
			if err != nil {
				unauthorized(w, "unreadable body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			ok, err := v.Creds.Verify(r.Method, r.URL.Path, salt, timestamp, string(body), signature)
			if err != nil || !ok {
				unauthorized(w, "bad signature")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// timestampFresh проверяет, что timestamp запроса в пределах MaxSkew
// от текущего времени. MaxSkew=0 отключает проверку.
func (v *SignatureVerifier) timestampFresh(timestamp string) bool {
	if v.MaxSkew == 0 {
		return true
	}
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	diff := time.Since(time.Unix(ts, 0))
	if diff < 0 {
		diff = -diff
	}
	return diff <= v.MaxSkew
}

// unauthorized пишет 401 с конвертом платёжного API.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set(sign.HeaderContentType, sign.ContentTypeJSON)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.Envelope{
		Status: models.Status{
			ErrorCode:   utils.StrPtr("UNAUTHENTICATED"),
			Status:      "ERROR",
			Message:     utils.StrPtr(message),
			OperationID: uuid.NewString(),
		},
	})
}
