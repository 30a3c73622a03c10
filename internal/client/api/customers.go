// В этом файле описаны методы клиента для работы
// с эндпоинтами покупателей: создание покупателя и привязка способа оплаты.
package api

import (
	"fmt"
	"net/http"

	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
)

// CreateCustomer создаёт нового покупателя.
//
// Выполняет запрос:
//
//	POST /v1/customers
//
// Маркер metadata.merchant_defined=true проставляется автоматически.
//
// Возвращает:
//   - созданный models.Customer
//   - nil и ошибку, если запрос не удался (таксономия ошибок единая для
//     всех операций клиента, см. документацию пакета).
func (c *Client) CreateCustomer(email, name string) (*models.Customer, error) {
	body := models.CreateCustomerRequest{
		Email:    email,
		Name:     name,
		Metadata: models.Metadata{MerchantDefined: true},
	}

	var out models.Customer
	if err := c.call(http.MethodPost, "/v1/customers", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddPaymentMethod привязывает банковскую карту к покупателю.
//
// Выполняет запрос:
//
//	POST /v1/customers/{customer_id}/payment_methods
//
// Параметры:
//   - customerID: идентификатор покупателя ("cus_...")
//   - cardType: тип способа оплаты (например "us_debit_visa_card")
//   - fields: реквизиты карты; номер и cvv уходят только в запрос,
//     обратно API возвращает маскированные данные.
//
// Возвращает:
//   - привязанный models.CardPayment
//   - nil и ошибку, если запрос не удался.
func (c *Client) AddPaymentMethod(customerID, cardType string, fields models.CardFields) (*models.CardPayment, error) {
	body := models.AddPaymentMethodRequest{
		Type:     cardType,
		Fields:   fields,
		Metadata: models.Metadata{MerchantDefined: true},
	}

	var out models.CardPayment
	if err := c.call(http.MethodPost, fmt.Sprintf("/v1/customers/%s/payment_methods", customerID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
