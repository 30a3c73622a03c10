package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/cli"
	"github.com/IvanChernomyrdin/go-paygate/internal/client/config"
)

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	cmd := cli.NewRootCmd("1.0.0", "2026-08-29")

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}

	want := []string{
		"configure",
		"checkout-create",
		"checkout-get",
		"customer-create",
		"card-add",
		"version",
	}
	for _, w := range want {
		if !names[w] {
			t.Fatalf("expected subcommand %q to exist", w)
		}
	}
}

func TestNewRootCmd_PersistentPreRunE_LoadsCreds(t *testing.T) {
	// изолируем домашнюю директорию, чтобы не трогать реальный конфиг
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAccessKey, "")
	t.Setenv(config.EnvSecretKey, "")
	t.Setenv(config.EnvBaseURL, "")

	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if err := config.Save(p, &config.Credentials{AccessKey: "ak_root", SecretKey: "sk_root"}); err != nil {
		t.Fatalf("Save creds: %v", err)
	}

	root := cli.NewRootCmd("1.0.0", "2026-08-29")

	// Важно: чтобы выполнить PersistentPreRunE, нужно реально запустить команду.
	// Возьмём безопасную подкоманду version, она не ходит в сеть/файлы кроме PreRun.
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "version=") || !strings.Contains(got, "build_date=") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewRootCmd_PersistentPreRunE_ReturnsErrorOnBadCredsFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	// битый файл: config.Load обязан вернуть ошибку
	if err := os.WriteFile(p, []byte("{not-json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	root := cli.NewRootCmd("1.0.0", "2026-08-29")
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
