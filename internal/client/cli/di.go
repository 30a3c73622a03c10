package cli

import (
	"github.com/IvanChernomyrdin/go-paygate/internal/client/api"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewAPIClient  = api.New
	ReadSecretKey = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readSecretKey(cmd, fromStdin)
	}
)
