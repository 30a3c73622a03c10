// Package main содержит точку входа sandbox-сервера платёжного API.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации из файла ./configs/sandbox.yaml;
//   - создание in-memory хранилища и HTTP-обработчиков;
//   - настройку и запуск HTTP-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Sandbox проверяет подписи входящих запросов тем же кодом, которым
// клиент их формирует, и ничего не персистит между рестартами.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/sign"
	"github.com/IvanChernomyrdin/go-paygate/internal/sandbox/api"
	"github.com/IvanChernomyrdin/go-paygate/internal/sandbox/config"
	"github.com/IvanChernomyrdin/go-paygate/internal/sandbox/storage"
	"github.com/IvanChernomyrdin/go-paygate/internal/shared/logger"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/sandbox.yaml")
	if err != nil {
		sugar.Fatal(err)
	}

	// создаём хранилище
	store := storage.New()
	// создаём хандлер
	handler := api.NewHandler(store, httpLogger)
	// создаём роутер с проверкой подписи
	creds := sign.Credentials{
		AccessKey: cfg.Auth.AccessKey,
		SecretKey: cfg.Auth.SecretKey,
	}
	router := api.NewRouter(handler, creds, cfg.Auth.MaxClockSkew)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("sandbox started on %s", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			ctx,
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("sandbox stopped with error: %v", err)
	}
	sugar.Info("sandbox gracefully stopped")
}
