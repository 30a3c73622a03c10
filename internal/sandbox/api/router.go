package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/sign"
	"github.com/IvanChernomyrdin/go-paygate/internal/sandbox/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер sandbox-сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования для всех запросов;
//   - middleware проверки подписи для всех запросов (протокол
//     access_key/salt/timestamp/signature, см. пакет sign);
//   - эндпоинты платёжного API под префиксом /v1;
//   - служебный эндпоинт симуляции оплаты (только в sandbox).
func NewRouter(h *Handler, creds sign.Credentials, maxSkew time.Duration) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// проверка подписи всех запросов
	verifier := middleware.NewSignatureVerifier(creds, maxSkew)
	r.Use(verifier.AuthMiddleware())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", h.CreateCheckout)             // Создание checkout-страницы
			r.Get("/{checkout_id}", h.GetCheckout)    // Статус платежа
			r.Post("/{checkout_id}/pay", h.Simulate)  // Симуляция оплаты (sandbox-only)
		})
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", h.CreateCustomer)                          // Создание покупателя
			r.Post("/{customer_id}/payment_methods", h.AddCard)    // Привязка карты
		})
	})

	return r
}
