// HTTP-хендлеры покупателей: создание и привязка способов оплаты
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	serr "github.com/IvanChernomyrdin/go-paygate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
)

// CreateCustomer обрабатывает создание покупателя.
//
// Ответы:
//   - 200 OK: покупатель создан, data содержит Customer;
//   - 400 Bad Request: неверный JSON или невалидные входные данные.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "BAD_REQUEST", serr.ErrBadJSON.Error())
		return
	}
	if req.Email == "" || req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "BAD_REQUEST", serr.ErrInvalidInput.Error())
		return
	}

	customer := h.Store.CreateCustomer(req)
	h.writeData(w, customer)
}

// AddCard обрабатывает привязку карты к покупателю.
//
// Ответы:
//   - 200 OK: карта привязана, data содержит CardPayment (маскированный);
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 404 Not Found: покупатель с таким ID не существует.
func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customer_id")

	var req models.AddPaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "BAD_REQUEST", serr.ErrBadJSON.Error())
		return
	}
	if req.Type == "" || req.Fields.Number == "" {
		h.writeError(w, http.StatusBadRequest, "BAD_REQUEST", serr.ErrInvalidInput.Error())
		return
	}

	card, err := h.Store.AddCard(customerID, req)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "NOT_FOUND", serr.ErrNotFound.Error())
			return
		}
		h.Log.Logger.Sugar().Error("add card failed")
		h.writeError(w, http.StatusInternalServerError, "INTERNAL", serr.ErrInternal.Error())
		return
	}

	h.writeData(w, card)
}
