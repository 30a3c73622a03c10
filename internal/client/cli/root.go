// Package cli реализует командный интерфейс (CLI) мерчантского клиента PayGate.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку ключей мерчанта (access/secret key) из конфигурационного файла
//     и переменных окружения (.env поддерживается через godotenv);
//   - выполнение операций платёжного API и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/api"
	"github.com/IvanChernomyrdin/go-paygate/internal/client/config"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/logger"
)

// DefaultBaseURL — адрес платёжного API по умолчанию (локальный sandbox).
const DefaultBaseURL = "http://127.0.0.1:8080"

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к API и загруженные ключи мерчанта.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// BaseURL — базовый URL платёжного API. Значение флага --server имеет
	// приоритет над base_url из конфигурационного файла.
	BaseURL string

	// CredsPath — путь к файлу с сохранёнными ключами мерчанта.
	CredsPath string
	// Creds — загруженные ключи из файла конфигурации и окружения.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// загружается .env (если есть), определяется путь к файлу ключей
// и загружаются сохранённые ключи мерчанта.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "paygate",
		Short: "PayGate CLI — клиент платёжного API (checkout/customers)",
		Long: `PayGate CLI.

Команды:
  configure        Сохранить ключи мерчанта (access/secret key)
  checkout-create  Создать checkout-страницу
  checkout-get     Получить статус платежа по checkout
  customer-create  Создать покупателя
  card-add         Привязать карту к покупателю
  version          Версия и дата сборки

Примеры:

Настройка ключей:
  paygate configure --access-key ak_demo
  (secret key запрашивается интерактивно со скрытым вводом)

Создание checkout:
  paygate checkout-create --amount 49.90 --currency USD --country US

Статус платежа:
  paygate checkout-get checkout_0f6a...
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env опционален: нет файла — работаем с тем, что есть в окружении
			_ = godotenv.Load()

			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.BaseURL, "server", "", "base URL платёжного API (приоритет над конфигом)")

	cmd.AddCommand(NewConfigureCmd(app))
	cmd.AddCommand(NewCheckoutCreateCmd(app))
	cmd.AddCommand(NewCheckoutGetCmd(app))
	cmd.AddCommand(NewCustomerCreateCmd(app))
	cmd.AddCommand(NewCardAddCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// newClient создаёт API-клиент из текущего состояния приложения.
//
// Порядок выбора base URL: флаг --server, затем base_url из конфига,
// затем DefaultBaseURL. Ключи мерчанта обязательны.
func newClient(app *App) (*api.Client, error) {
	if err := app.Creds.Validate(); err != nil {
		return nil, fmt.Errorf("credentials: %w (run: paygate configure)", err)
	}

	baseURL := app.BaseURL
	if baseURL == "" {
		baseURL = app.Creds.BaseURL
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return NewAPIClient(baseURL, app.Creds.AccessKey, app.Creds.SecretKey,
		api.WithLogger(logger.NewHTTPLogger())), nil
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
