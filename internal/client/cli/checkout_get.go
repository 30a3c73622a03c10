package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckoutGetCmd создаёт CLI-команду для получения статуса платежа.
//
// Команда выполняет GET /v1/checkout/{id} и печатает текущее состояние
// платежа по checkout-странице.
//
// Пример использования:
//
//	paygate checkout-get checkout_0f6a1b...
func NewCheckoutGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout-get <id>",
		Short: "Получить статус платежа по checkout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(app)
			if err != nil {
				return err
			}

			status, err := c.GetCheckout(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ID: %s\nStatus: %s\nAmount: %.2f %s\nPaid: %t\n",
				status.ID, status.Status, status.Amount, status.Currency, status.Paid,
			)
			if status.FailureCode != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "FailureCode: %s\n", *status.FailureCode)
			}
			if status.FailureMessage != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "FailureMessage: %s\n", *status.FailureMessage)
			}
			return nil
		},
	}
}
