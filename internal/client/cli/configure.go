package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/config"
)

// NewConfigureCmd создаёт CLI-команду для сохранения ключей мерчанта.
//
// Команда записывает access key, secret key и (опционально) базовый URL
// в локальный конфигурационный файл. Secret key по умолчанию запрашивается
// интерактивно со скрытым вводом; для скриптов/CI доступен режим чтения
// из STDIN через --secret-key-stdin.
//
// Примеры:
//
//	paygate configure --access-key ak_demo
//	echo "sk_demo" | paygate configure --access-key ak_demo --secret-key-stdin
//	paygate configure --access-key ak_demo --base-url https://sandboxapi.example.com
func NewConfigureCmd(app *App) *cobra.Command {
	var accessKey, baseURL string
	var secretFromStdin bool

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Сохранить ключи мерчанта (access/secret key)",
		Long: `Сохраняет ключи мерчанта в локальный конфиг (~/.paygate/credentials.json).

Secret key запрашивается со скрытым вводом. Для скриптов:
  echo "sk_demo" | paygate configure --access-key ak_demo --secret-key-stdin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secretKey, err := ReadSecretKey(cmd, secretFromStdin)
			if err != nil {
				return err
			}

			app.Creds.AccessKey = accessKey
			app.Creds.SecretKey = secretKey
			if baseURL != "" {
				app.Creds.BaseURL = baseURL
			}

			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "configure ok (keys saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&accessKey, "access-key", "", "access key мерчанта")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "базовый URL платёжного API (опционально)")
	cmd.Flags().BoolVar(&secretFromStdin, "secret-key-stdin", false, "read secret key from STDIN (for scripts)")
	cmd.MarkFlagRequired("access-key")

	return cmd
}

// readSecretKey читает secret key мерчанта.
//
// Режимы:
//   - fromStdin=true: читает ключ из STDIN полностью (удобно для скриптов/CI);
//   - fromStdin=false: читает ключ интерактивно из терминала со скрытым вводом.
//
// Важно:
//   - если fromStdin=false, но stdin не является терминалом, функция вернёт ошибку
//     "stdin is not a terminal; use --secret-key-stdin".
//   - пустой ключ считается ошибкой.
func readSecretKey(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read secret key from stdin: %w", err)
		}
		key := bytes.TrimRight(b, "\r\n")
		if len(key) == 0 {
			return "", errors.New("empty secret key on stdin")
		}
		return string(key), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --secret-key-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Secret key: ")
	keyBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read secret key: %w", err)
	}

	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		return "", errors.New("empty secret key")
	}
	return key, nil
}
