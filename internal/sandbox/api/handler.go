// Package api реализует HTTP-слой sandbox-сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - обработку входящих запросов и формирование ответов в конверте
//     платёжного API ({"status": {...}, "data": {...}});
//   - маппинг доменных ошибок хранилища в HTTP-коды и error_code;
//   - подключение middleware (логирование, проверка подписи).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/sign"
	"github.com/IvanChernomyrdin/go-paygate/internal/sandbox/storage"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/utils"
)

// Handler агрегирует зависимости HTTP-хендлеров sandbox.
type Handler struct {
	Store *storage.Store
	Log   *logger.HTTPLogger
}

// NewHandler создаёт Handler с переданными зависимостями.
func NewHandler(store *storage.Store, log *logger.HTTPLogger) *Handler {
	return &Handler{Store: store, Log: log}
}

// writeData пишет успешный ответ: HTTP 200 и конверт со статусом SUCCESS.
//
// Клиент считает успехом строго HTTP 200, поэтому sandbox не использует
// 201 даже для создания объектов.
func (h *Handler) writeData(w http.ResponseWriter, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.Log.Logger.Sugar().Error("marshal response data failed")
		h.writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	w.Header().Set(sign.HeaderContentType, sign.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.Envelope{
		Status: models.Status{
			Status:      "SUCCESS",
			OperationID: uuid.NewString(),
		},
		Data: raw,
	})
}

// writeError пишет ошибочный ответ: заданный HTTP-статус и конверт
// со статусом ERROR и машинным error_code.
func (h *Handler) writeError(w http.ResponseWriter, httpCode int, errorCode, message string) {
	w.Header().Set(sign.HeaderContentType, sign.ContentTypeJSON)
	w.WriteHeader(httpCode)
	json.NewEncoder(w).Encode(models.Envelope{
		Status: models.Status{
			ErrorCode:   utils.StrPtr(errorCode),
			Status:      "ERROR",
			Message:     utils.StrPtr(message),
			OperationID: uuid.NewString(),
		},
	})
}
