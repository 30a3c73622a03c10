package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
)

// NewCardAddCmd создаёт CLI-команду для привязки карты к покупателю.
//
// Команда выполняет POST /v1/customers/{id}/payment_methods и печатает
// идентификатор привязанного способа оплаты и маскированные данные карты.
//
// Реквизиты карты передаются только в запросе; обратно API возвращает
// только last4 и fingerprint.
//
// Пример использования:
//
//	paygate card-add --customer cus_... --type us_debit_visa_card \
//	  --number 4111111111111111 --exp-month 12 --exp-year 30 --cvv 123 --name "IVAN PETROV"
func NewCardAddCmd(app *App) *cobra.Command {
	var customerID, cardType string
	var number, expMonth, expYear, cvv, holder string

	cmd := &cobra.Command{
		Use:   "card-add",
		Short: "Привязать карту к покупателю",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(app)
			if err != nil {
				return err
			}

			card, err := c.AddPaymentMethod(customerID, cardType, models.CardFields{
				Number:          number,
				ExpirationMonth: expMonth,
				ExpirationYear:  expYear,
				CVV:             cvv,
				Name:            holder,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ID: %s\nType: %s\nLast4: %s\nExpires: %s/%s\n",
				card.ID, card.Type, card.Last4, card.ExpirationMonth, card.ExpirationYear,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "ID покупателя (cus_...)")
	cmd.Flags().StringVar(&cardType, "type", "", "тип способа оплаты (например us_debit_visa_card)")
	cmd.Flags().StringVar(&number, "number", "", "номер карты")
	cmd.Flags().StringVar(&expMonth, "exp-month", "", "месяц окончания действия (MM)")
	cmd.Flags().StringVar(&expYear, "exp-year", "", "год окончания действия (YY)")
	cmd.Flags().StringVar(&cvv, "cvv", "", "cvv/cvc код")
	cmd.Flags().StringVar(&holder, "name", "", "имя держателя карты")
	cmd.MarkFlagRequired("customer")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("number")
	cmd.MarkFlagRequired("exp-month")
	cmd.MarkFlagRequired("exp-year")
	cmd.MarkFlagRequired("cvv")

	return cmd
}
