// В этом файле описаны методы клиента для работы
// с эндпоинтами checkout: создание страницы оплаты и получение статуса платежа.
package api

import (
	"fmt"
	"net/http"

	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
)

// Значения по умолчанию для создаваемой checkout-страницы.
const (
	DefaultLanguage = "en"
)

// CreateCheckoutParams — параметры операции создания checkout.
//
// Обязательные поля: Amount, Country, Currency.
// CardholderPreferredCurrency по умолчанию true (nil трактуется как true),
// Language по умолчанию "en". Маркер metadata.merchant_defined=true
// проставляется автоматически.
type CreateCheckoutParams struct {
	Amount                      float64
	CompletePaymentURL          string
	Country                     string
	Currency                    string
	ErrorPaymentURL             string
	MerchantReferenceID         string
	CardholderPreferredCurrency *bool
	Language                    string
	PaymentMethodTypesInclude   []string
	Customer                    *string
}

// CreateCheckout создаёт новую checkout-страницу.
//
// Выполняет запрос:
//
//	POST /v1/checkout
//
// Возвращает:
//   - созданный models.Checkout (в том числе redirect_url для покупателя)
//   - nil и ошибку, если запрос не удался: сетевая ошибка, статус не 200
//     (*StatusError) или нечитаемый ответ.
func (c *Client) CreateCheckout(p CreateCheckoutParams) (*models.Checkout, error) {
	body := models.CreateCheckoutRequest{
		Amount:                      p.Amount,
		CompletePaymentURL:          p.CompletePaymentURL,
		Country:                     p.Country,
		Currency:                    p.Currency,
		ErrorPaymentURL:             p.ErrorPaymentURL,
		MerchantReferenceID:         p.MerchantReferenceID,
		CardholderPreferredCurrency: true,
		Language:                    DefaultLanguage,
		Metadata:                    models.Metadata{MerchantDefined: true},
		PaymentMethodTypesInclude:   p.PaymentMethodTypesInclude,
		Customer:                    p.Customer,
	}
	if p.CardholderPreferredCurrency != nil {
		body.CardholderPreferredCurrency = *p.CardholderPreferredCurrency
	}
	if p.Language != "" {
		body.Language = p.Language
	}

	var out models.Checkout
	if err := c.call(http.MethodPost, "/v1/checkout", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCheckout запрашивает состояние платежа по checkout-странице.
//
// Выполняет запрос:
//
//	GET /v1/checkout/{checkout_id}
//
// Запрос без тела: подписывается пустая строка.
//
// Возвращает:
//   - models.PaymentStatus с текущим состоянием платежа
//   - nil и ошибку, если запрос не удался.
func (c *Client) GetCheckout(checkoutID string) (*models.PaymentStatus, error) {
	var out models.PaymentStatus
	if err := c.call(http.MethodGet, fmt.Sprintf("/v1/checkout/%s", checkoutID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
