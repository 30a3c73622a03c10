package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/api"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/utils"
)

func TestCreateCheckout_Success(t *testing.T) {
	var got models.CreateCheckoutRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/checkout", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		body := requireSigned(t, r)
		require.NoError(t, json.Unmarshal(body, &got))

		writeEnvelope(t, w, models.Checkout{
			ID:          "checkout_1",
			Amount:      got.Amount,
			Country:     got.Country,
			Currency:    got.Currency,
			RedirectURL: "https://pay.example.com/checkout_1",
			Status:      "NEW",
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	checkout, err := c.CreateCheckout(api.CreateCheckoutParams{
		Amount:              49.99,
		CompletePaymentURL:  "https://shop.example.com/ok",
		Country:             "US",
		Currency:            "USD",
		ErrorPaymentURL:     "https://shop.example.com/fail",
		MerchantReferenceID: "order-42",
	})
	require.NoError(t, err)

	require.Equal(t, "checkout_1", checkout.ID)
	require.Equal(t, "https://pay.example.com/checkout_1", checkout.RedirectURL)
	require.Equal(t, "NEW", checkout.Status)

	// тело запроса собрано из параметров без искажений
	require.Equal(t, 49.99, got.Amount)
	require.Equal(t, "US", got.Country)
	require.Equal(t, "USD", got.Currency)
	require.Equal(t, "https://shop.example.com/ok", got.CompletePaymentURL)
	require.Equal(t, "https://shop.example.com/fail", got.ErrorPaymentURL)
	require.Equal(t, "order-42", got.MerchantReferenceID)
}

func TestCreateCheckout_Defaults(t *testing.T) {
	var got models.CreateCheckoutRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/checkout", func(w http.ResponseWriter, r *http.Request) {
		body := requireSigned(t, r)
		require.NoError(t, json.Unmarshal(body, &got))
		writeEnvelope(t, w, models.Checkout{ID: "checkout_1"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.CreateCheckout(api.CreateCheckoutParams{Amount: 1, Currency: "EUR", Country: "DE"})
	require.NoError(t, err)

	require.True(t, got.CardholderPreferredCurrency, "default must be true")
	require.Equal(t, api.DefaultLanguage, got.Language)
	require.True(t, got.Metadata.MerchantDefined)
	require.Nil(t, got.Customer)
}

func TestCreateCheckout_OverridesDefaults(t *testing.T) {
	var got models.CreateCheckoutRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/checkout", func(w http.ResponseWriter, r *http.Request) {
		body := requireSigned(t, r)
		require.NoError(t, json.Unmarshal(body, &got))
		writeEnvelope(t, w, models.Checkout{ID: "checkout_1"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.CreateCheckout(api.CreateCheckoutParams{
		Amount:                      1,
		Currency:                    "EUR",
		Country:                     "DE",
		CardholderPreferredCurrency: utils.Ptr(false),
		Language:                    "de",
		PaymentMethodTypesInclude:   []string{"de_visa_card"},
		Customer:                    utils.StrPtr("cus_9"),
	})
	require.NoError(t, err)

	require.False(t, got.CardholderPreferredCurrency)
	require.Equal(t, "de", got.Language)
	require.Equal(t, []string{"de_visa_card"}, got.PaymentMethodTypesInclude)
	require.NotNil(t, got.Customer)
	require.Equal(t, "cus_9", *got.Customer)
	// маркер мерчанта не отключается переопределениями
	require.True(t, got.Metadata.MerchantDefined)
}

func TestGetCheckout_Success_EmptyBodySigned(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/checkout/checkout_1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		// GET без тела: подпись считается от пустой строки
		body := requireSigned(t, r)
		require.Empty(t, body)

		writeEnvelope(t, w, models.PaymentStatus{
			ID:       "checkout_1",
			Amount:   49.99,
			Currency: "USD",
			Status:   "CLO",
			Paid:     true,
			PaidAt:   utils.Ptr(int64(1712345678)),
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	status, err := c.GetCheckout("checkout_1")
	require.NoError(t, err)
	require.Equal(t, "checkout_1", status.ID)
	require.True(t, status.Paid)
	require.NotNil(t, status.PaidAt)
	require.Equal(t, int64(1712345678), *status.PaidAt)
	require.Nil(t, status.FailureCode)
}

func TestGetCheckout_Forbidden_ReturnsStatusError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/checkout/checkout_1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(models.Envelope{
			Status: models.Status{
				ErrorCode:   utils.StrPtr("UNAUTHENTICATED"),
				Status:      "ERROR",
				OperationID: "op_x",
			},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	status, err := c.GetCheckout("checkout_1")
	require.Nil(t, status)

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusForbidden, statusErr.Code)
}
