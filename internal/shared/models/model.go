// Package models содержит wire-модели платёжного API,
// общие для клиента и sandbox-сервера.
//
// Все модели — плоские DTO без поведения: поля приходят из JSON
// и передаются дальше без преобразований. Опциональные поля
// объявлены указателями, чтобы omitempty работал корректно
// и чтобы "поле отсутствует" отличалось от "поле пустое".
package models

import "encoding/json"

// Status — статусная часть ответа платёжного API.
//
// Каждый ответ сервера (успешный и ошибочный) содержит такой объект
// на верхнем уровне под ключом "status".
//
// Поля:
//   - ErrorCode: машинный код ошибки (отсутствует при успехе)
//   - Status: строковый статус ответа ("SUCCESS", "ERROR", ...)
//   - Message: человекочитаемое описание (опционально)
//   - ResponseCode: дополнительный код ответа платёжной системы (опционально)
//   - OperationID: уникальный идентификатор операции на стороне API
type Status struct {
	ErrorCode    *string `json:"error_code,omitempty"`
	Status       string  `json:"status"`
	Message      *string `json:"message,omitempty"`
	ResponseCode *string `json:"response_code,omitempty"`
	OperationID  string  `json:"operation_id"`
}

// Envelope — верхнеуровневый конверт любого ответа платёжного API.
//
// Формат:
//
//	{"status": {...}, "data": {...}}
//
// Data хранится как json.RawMessage: конкретный тип объекта зависит
// от эндпоинта и декодируется вызывающей стороной.
type Envelope struct {
	Status Status          `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Metadata — маркер мерчантских запросов.
//
// Объект metadata.merchant_defined=true прикладывается ко всем телам
// POST-запросов, чтобы на стороне API отличать запросы, созданные
// мерчантом, от системных.
type Metadata struct {
	MerchantDefined bool `json:"merchant_defined"`
}

// CreateCheckoutRequest — запрос на создание checkout-страницы.
//
// Используется в:
//
//	POST /v1/checkout
//
// Поля:
//   - Amount/Country/Currency обязательны
//   - CompletePaymentURL/ErrorPaymentURL — куда редиректить покупателя
//   - MerchantReferenceID — ссылка мерчанта на свой заказ
//   - CardholderPreferredCurrency — конвертация в валюту карты (по умолчанию true)
//   - Language — язык страницы (по умолчанию "en")
//   - PaymentMethodTypesInclude — ограничение доступных способов оплаты
//   - Customer — ID существующего покупателя (опционально)
type CreateCheckoutRequest struct {
	Amount                      float64  `json:"amount"`
	CompletePaymentURL          string   `json:"complete_payment_url"`
	Country                     string   `json:"country"`
	Currency                    string   `json:"currency"`
	ErrorPaymentURL             string   `json:"error_payment_url"`
	MerchantReferenceID         string   `json:"merchant_reference_id"`
	CardholderPreferredCurrency bool     `json:"cardholder_preferred_currency"`
	Language                    string   `json:"language"`
	Metadata                    Metadata `json:"metadata"`
	PaymentMethodTypesInclude   []string `json:"payment_method_types_include,omitempty"`
	Customer                    *string  `json:"customer,omitempty"`
}

// Checkout — созданная checkout-страница.
//
// Возвращается в data ответа POST /v1/checkout.
type Checkout struct {
	ID                          string   `json:"id"`
	Amount                      float64  `json:"amount"`
	Country                     string   `json:"country"`
	Currency                    string   `json:"currency"`
	CompletePaymentURL          string   `json:"complete_payment_url"`
	ErrorPaymentURL             string   `json:"error_payment_url"`
	MerchantReferenceID         string   `json:"merchant_reference_id"`
	CardholderPreferredCurrency bool     `json:"cardholder_preferred_currency"`
	Language                    string   `json:"language"`
	RedirectURL                 string   `json:"redirect_url"`
	Status                      string   `json:"status"`
	PaymentMethodTypesInclude   []string `json:"payment_method_types_include,omitempty"`
	Customer                    *string  `json:"customer,omitempty"`
	Timestamp                   int64    `json:"timestamp"`
}

// PaymentStatus — состояние платежа по checkout-странице.
//
// Возвращается в data ответа GET /v1/checkout/{checkout_id}.
//
// Поля:
//   - Paid: прошла ли оплата
//   - PaidAt: unix-время оплаты (отсутствует, если Paid=false)
//   - FailureCode/FailureMessage: причина отказа (опционально)
type PaymentStatus struct {
	ID             string  `json:"id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
	Paid           bool    `json:"paid"`
	PaidAt         *int64  `json:"paid_at,omitempty"`
	FailureCode    *string `json:"failure_code,omitempty"`
	FailureMessage *string `json:"failure_message,omitempty"`
}

// CreateCustomerRequest — запрос на создание покупателя.
//
// Используется в:
//
//	POST /v1/customers
type CreateCustomerRequest struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Metadata Metadata `json:"metadata"`
}

// Customer — созданный покупатель.
//
// Возвращается в data ответа POST /v1/customers.
type Customer struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	DefaultPayment *string  `json:"default_payment_method,omitempty"`
	CreatedAt      int64    `json:"created_at"`
	Metadata       Metadata `json:"metadata"`
}

// CardFields — реквизиты банковской карты.
//
// Передаются только в запросе добавления способа оплаты,
// обратно API возвращает маскированные данные (Last4, fingerprint).
type CardFields struct {
	Number          string `json:"number"`
	ExpirationMonth string `json:"expiration_month"`
	ExpirationYear  string `json:"expiration_year"`
	CVV             string `json:"cvv"`
	Name            string `json:"name"`
}

// AddPaymentMethodRequest — запрос на привязку способа оплаты к покупателю.
//
// Используется в:
//
//	POST /v1/customers/{customer_id}/payment_methods
//
// Type — тип способа оплаты (например "us_debit_visa_card").
type AddPaymentMethodRequest struct {
	Type     string     `json:"type"`
	Fields   CardFields `json:"fields"`
	Metadata Metadata   `json:"metadata"`
}

// CardPayment — привязанный способ оплаты.
//
// Возвращается в data ответа POST /v1/customers/{customer_id}/payment_methods.
// Номер карты обратно не возвращается: только Last4 и fingerprint.
type CardPayment struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Customer        string   `json:"customer"`
	Last4           string   `json:"last4"`
	ExpirationMonth string   `json:"expiration_month"`
	ExpirationYear  string   `json:"expiration_year"`
	Name            string   `json:"name"`
	Fingerprint     *string  `json:"fingerprint,omitempty"`
	Metadata        Metadata `json:"metadata"`
}
