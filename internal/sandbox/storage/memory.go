// Package storage содержит in-memory хранилище sandbox-сервера.
//
// Sandbox ничего не персистит: все созданные checkout, покупатели и карты
// живут в памяти процесса и пропадают при рестарте. Этого достаточно для
// локальной разработки и end-to-end тестов клиента.
package storage

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-paygate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
)

// Store — потокобезопасное in-memory хранилище объектов sandbox.
//
// Используется хендлерами для:
//   - создания checkout-страниц и выдачи статуса платежа по ним
//   - создания покупателей
//   - привязки карт к покупателям
//   - симуляции успешной оплаты (MarkPaid)
type Store struct {
	mu        sync.RWMutex
	checkouts map[string]models.Checkout
	payments  map[string]models.PaymentStatus
	customers map[string]models.Customer
	cards     map[string][]models.CardPayment
}

// New создаёт пустое хранилище.
func New() *Store {
	return &Store{
		checkouts: make(map[string]models.Checkout),
		payments:  make(map[string]models.PaymentStatus),
		customers: make(map[string]models.Customer),
		cards:     make(map[string][]models.CardPayment),
	}
}

// CreateCheckout сохраняет новую checkout-страницу из тела запроса.
//
// Генерирует идентификатор "checkout_...", redirect_url для покупателя
// и начальный статус платежа ("NEW", не оплачен).
func (s *Store) CreateCheckout(req models.CreateCheckoutRequest) models.Checkout {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID("checkout")
	checkout := models.Checkout{
		ID:                          id,
		Amount:                      req.Amount,
		Country:                     req.Country,
		Currency:                    req.Currency,
		CompletePaymentURL:          req.CompletePaymentURL,
		ErrorPaymentURL:             req.ErrorPaymentURL,
		MerchantReferenceID:         req.MerchantReferenceID,
		CardholderPreferredCurrency: req.CardholderPreferredCurrency,
		Language:                    req.Language,
		RedirectURL:                 "https://sandbox.paygate.local/pay/" + id,
		Status:                      "NEW",
		PaymentMethodTypesInclude:   req.PaymentMethodTypesInclude,
		Customer:                    req.Customer,
		Timestamp:                   time.Now().Unix(),
	}

	s.checkouts[id] = checkout
	s.payments[id] = models.PaymentStatus{
		ID:       id,
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "NEW",
		Paid:     false,
	}
	return checkout
}

// GetPayment возвращает состояние платежа по ID checkout-страницы.
//
// Если страница отсутствует — возвращает serr.ErrNotFound.
func (s *Store) GetPayment(checkoutID string) (models.PaymentStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[checkoutID]
	if !ok {
		return models.PaymentStatus{}, serr.ErrNotFound
	}
	return p, nil
}

// MarkPaid симулирует успешную оплату по checkout-странице.
//
// Переводит платёж в статус "CLO" (closed/paid) и проставляет paid_at.
// Если страница отсутствует — возвращает serr.ErrNotFound.
func (s *Store) MarkPaid(checkoutID string) (models.PaymentStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[checkoutID]
	if !ok {
		return models.PaymentStatus{}, serr.ErrNotFound
	}

	now := time.Now().Unix()
	p.Status = "CLO"
	p.Paid = true
	p.PaidAt = &now
	s.payments[checkoutID] = p

	if c, ok := s.checkouts[checkoutID]; ok {
		c.Status = "CLO"
		s.checkouts[checkoutID] = c
	}
	return p, nil
}

// CreateCustomer сохраняет нового покупателя из тела запроса.
func (s *Store) CreateCustomer(req models.CreateCustomerRequest) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := models.Customer{
		ID:        newID("cus"),
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: time.Now().Unix(),
		Metadata:  req.Metadata,
	}
	s.customers[customer.ID] = customer
	return customer
}

// AddCard привязывает карту к покупателю.
//
// Полный номер карты и cvv не сохраняются: в хранилище остаются только
// маскированные данные (last4, fingerprint).
//
// Если покупатель отсутствует — возвращает serr.ErrNotFound.
func (s *Store) AddCard(customerID string, req models.AddPaymentMethodRequest) (models.CardPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return models.CardPayment{}, serr.ErrNotFound
	}

	number := req.Fields.Number
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}

	fingerprint := newID("fp")
	card := models.CardPayment{
		ID:              newID("card"),
		Type:            req.Type,
		Category:        "card",
		Customer:        customerID,
		Last4:           last4,
		ExpirationMonth: req.Fields.ExpirationMonth,
		ExpirationYear:  req.Fields.ExpirationYear,
		Name:            req.Fields.Name,
		Fingerprint:     &fingerprint,
		Metadata:        req.Metadata,
	}
	s.cards[customerID] = append(s.cards[customerID], card)
	return card, nil
}

// newID генерирует идентификатор объекта вида "<prefix>_<32 hex>".
func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
