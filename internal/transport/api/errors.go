package api

import "errors"

// Публичные ошибки, их текст уходит в ответ как есть.
var (
	ErrPaymentIDMissing = errors.New("Payment ID missing")   //nolint:staticcheck
	ErrInvalidBody      = errors.New("Invalid request body") //nolint:staticcheck
	ErrMethodNotAllowed = errors.New("Method not allowed")   //nolint:staticcheck
)
