// HTTP-хендлеры checkout: создание страницы, статус платежа, симуляция оплаты
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	serr "github.com/IvanChernomyrdin/go-paygate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
)

// CreateCheckout обрабатывает создание checkout-страницы.
//
// Ответы:
//   - 200 OK: страница создана, data содержит Checkout;
//   - 400 Bad Request: неверный JSON или невалидные входные данные.
func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "BAD_REQUEST", serr.ErrBadJSON.Error())
		return
	}
	if req.Amount <= 0 || req.Currency == "" || req.Country == "" {
		h.writeError(w, http.StatusBadRequest, "BAD_REQUEST", serr.ErrInvalidInput.Error())
		return
	}

	checkout := h.Store.CreateCheckout(req)
	h.writeData(w, checkout)
}

// GetCheckout обрабатывает запрос статуса платежа по checkout-странице.
//
// Ответы:
//   - 200 OK: data содержит PaymentStatus;
//   - 404 Not Found: checkout с таким ID не существует.
func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "checkout_id")

	payment, err := h.Store.GetPayment(id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "NOT_FOUND", serr.ErrNotFound.Error())
			return
		}
		h.Log.Logger.Sugar().Error("get payment failed")
		h.writeError(w, http.StatusInternalServerError, "INTERNAL", serr.ErrInternal.Error())
		return
	}

	h.writeData(w, payment)
}

// Simulate обрабатывает симуляцию успешной оплаты (только в sandbox).
//
// Реального аналога у этого эндпоинта нет: он нужен, чтобы в разработке
// и тестах переводить платёж в оплаченное состояние без участия покупателя.
//
// Ответы:
//   - 200 OK: data содержит обновлённый PaymentStatus;
//   - 404 Not Found: checkout с таким ID не существует.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "checkout_id")

	payment, err := h.Store.MarkPaid(id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "NOT_FOUND", serr.ErrNotFound.Error())
			return
		}
		h.Log.Logger.Sugar().Error("mark paid failed")
		h.writeError(w, http.StatusInternalServerError, "INTERNAL", serr.ErrInternal.Error())
		return
	}

	h.writeData(w, payment)
}
