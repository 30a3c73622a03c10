package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/cli"
	"github.com/IvanChernomyrdin/go-paygate/internal/client/config"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/models"
)

// newTestApp собирает состояние CLI с валидными ключами,
// направленное на тестовый сервер.
func newTestApp(srvURL string) *cli.App {
	return &cli.App{
		BaseURL: srvURL,
		Creds: &config.Credentials{
			AccessKey: "ak_cli",
			SecretKey: "sk_cli",
		},
	}
}

// envelopeHandler отвечает успешным конвертом платёжного API
// с переданным объектом в data.
func envelopeHandler(t *testing.T, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := json.Marshal(data)
		if err != nil {
			t.Fatalf("marshal data: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Envelope{
			Status: models.Status{Status: "SUCCESS", OperationID: "op_cli"},
			Data:   raw,
		})
	}
}
