package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCustomerCreateCmd создаёт CLI-команду для создания покупателя.
//
// Команда выполняет POST /v1/customers и печатает идентификатор
// созданного покупателя.
//
// Пример использования:
//
//	paygate customer-create --email buyer@example.com --name "Ivan Petrov"
func NewCustomerCreateCmd(app *App) *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "customer-create",
		Short: "Создать покупателя",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(app)
			if err != nil {
				return err
			}

			customer, err := c.CreateCustomer(email, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ID: %s\nEmail: %s\nName: %s\n",
				customer.ID, customer.Email, customer.Name,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email покупателя")
	cmd.Flags().StringVar(&name, "name", "", "имя покупателя")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("name")

	return cmd
}
