package tests

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/cli"
	"github.com/IvanChernomyrdin/go-paygate/internal/client/config"
	serr "github.com/IvanChernomyrdin/go-paygate/internal/shared/errors"
)

func TestNewConfigureCmd_SecretFromStdin_SavesKeys(t *testing.T) {
	t.Setenv(config.EnvAccessKey, "")
	t.Setenv(config.EnvSecretKey, "")
	t.Setenv(config.EnvBaseURL, "")

	credsPath := filepath.Join(t.TempDir(), "credentials.json")

	app := &cli.App{
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewConfigureCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// секрет приходит из stdin, перевод строки должен быть отрезан
	cmd.SetIn(strings.NewReader("sk_from_stdin\n"))

	cmd.SetArgs([]string{
		"--access-key", "ak_from_flag",
		"--base-url", "https://sandboxapi.example.com",
		"--secret-key-stdin",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "configure ok (keys saved)") {
		t.Fatalf("unexpected output: %q", got)
	}

	// проверим, что ключи реально сохранились в файл
	loaded, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.AccessKey != "ak_from_flag" {
		t.Fatalf("expected AccessKey=ak_from_flag, got %q", loaded.AccessKey)
	}
	if loaded.SecretKey != "sk_from_stdin" {
		t.Fatalf("expected SecretKey=sk_from_stdin, got %q", loaded.SecretKey)
	}
	if loaded.BaseURL != "https://sandboxapi.example.com" {
		t.Fatalf("expected BaseURL to be saved, got %q", loaded.BaseURL)
	}
}

func TestNewConfigureCmd_EmptyStdinSecret_ReturnsError(t *testing.T) {
	credsPath := filepath.Join(t.TempDir(), "credentials.json")

	app := &cli.App{
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewConfigureCmd(app)
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetArgs([]string{
		"--access-key", "ak_from_flag",
		"--secret-key-stdin",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), "empty secret key") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestNewConfigureCmd_MissingAccessKey_ReturnsError(t *testing.T) {
	app := &cli.App{
		CredsPath: filepath.Join(t.TempDir(), "credentials.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewConfigureCmd(app)
	cmd.SetIn(strings.NewReader("sk\n"))
	cmd.SetArgs([]string{"--secret-key-stdin"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}

	// Cobra обычно пишет "required flag(s) \"access-key\" not set"
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}
