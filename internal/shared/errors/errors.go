// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в sign и api слоях клиента
// и маппятся на HTTP-статусы в sandbox слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Ключи или подписываемая строка содержат символы вне ASCII
	ErrNotASCII = errors.New("input is not ascii")
	// Подпись запроса не совпала с ожидаемой
	ErrBadSignature = errors.New("bad signature")
	// Ответ сервера не удалось декодировать
	ErrBadResponse = errors.New("bad response body")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для клиентской конфигурации
var (
	// credentials
	ErrAccessKeyEmpty = errors.New("access key cannot be empty")
	ErrSecretKeyEmpty = errors.New("secret key cannot be empty")
)
