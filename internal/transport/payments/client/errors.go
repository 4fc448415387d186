package client

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAccessToken = errors.New("payments api access token is not configured")
	ErrEmptyPaymentID     = errors.New("payment id is empty")
)

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}
