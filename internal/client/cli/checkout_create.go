package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/api"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/utils"
)

// NewCheckoutCreateCmd создаёт CLI-команду для создания checkout-страницы.
//
// Команда выполняет POST /v1/checkout и печатает идентификатор созданной
// страницы, redirect_url для покупателя и статус.
//
// Если --reference не указан, merchant_reference_id генерируется
// автоматически (uuid).
//
// Пример использования:
//
//	paygate checkout-create --amount 49.90 --currency USD --country US \
//	  --complete-url https://shop.example.com/ok --error-url https://shop.example.com/fail
func NewCheckoutCreateCmd(app *App) *cobra.Command {
	var (
		amount              float64
		currency, country   string
		completeURL         string
		errorURL            string
		reference, language string
		customer            string
		paymentMethods      []string
		noPreferredCurrency bool
	)

	cmd := &cobra.Command{
		Use:   "checkout-create",
		Short: "Создать checkout-страницу",
		Long: `Создаёт checkout-страницу для приёма платежа.

Пример:
  paygate checkout-create --amount 49.90 --currency USD --country US
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(app)
			if err != nil {
				return err
			}

			if reference == "" {
				reference = uuid.NewString()
			}

			p := api.CreateCheckoutParams{
				Amount:                    amount,
				CompletePaymentURL:        completeURL,
				Country:                   country,
				Currency:                  currency,
				ErrorPaymentURL:           errorURL,
				MerchantReferenceID:       reference,
				Language:                  language,
				PaymentMethodTypesInclude: paymentMethods,
			}
			if customer != "" {
				p.Customer = utils.StrPtr(customer)
			}
			if noPreferredCurrency {
				p.CardholderPreferredCurrency = utils.Ptr(false)
			}

			checkout, err := c.CreateCheckout(p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ID: %s\nRedirectURL: %s\nStatus: %s\nReference: %s\n",
				checkout.ID, checkout.RedirectURL, checkout.Status, checkout.MerchantReferenceID,
			)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "сумма платежа")
	cmd.Flags().StringVar(&currency, "currency", "", "валюта (ISO 4217, например USD)")
	cmd.Flags().StringVar(&country, "country", "", "страна (ISO 3166-1 alpha-2, например US)")
	cmd.Flags().StringVar(&completeURL, "complete-url", "", "URL редиректа после успешной оплаты")
	cmd.Flags().StringVar(&errorURL, "error-url", "", "URL редиректа при ошибке оплаты")
	cmd.Flags().StringVar(&reference, "reference", "", "merchant_reference_id (по умолчанию uuid)")
	cmd.Flags().StringVar(&language, "language", "", `язык страницы (по умолчанию "en")`)
	cmd.Flags().StringVar(&customer, "customer", "", "ID существующего покупателя")
	cmd.Flags().StringSliceVar(&paymentMethods, "payment-methods", nil, "ограничить доступные способы оплаты")
	cmd.Flags().BoolVar(&noPreferredCurrency, "no-preferred-currency", false, "отключить конвертацию в валюту карты")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("currency")
	cmd.MarkFlagRequired("country")

	return cmd
}
