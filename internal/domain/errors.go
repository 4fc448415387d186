package domain

import (
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
	// ErrConstraint нарушено ограничение CHECK (например, отрицательный остаток).
	ErrConstraint = errors.New("constraint violation")
	// ErrConflict конкурирующая транзакция (deadlock, serialization failure), операцию можно повторить.
	ErrConflict = errors.New("concurrent update conflict")

	ErrIntegration      = errors.New("payment provider integration failure")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrRechargeNotFound = errors.New("wallet recharge not found")
	ErrWalletNotFound   = errors.New("wallet not found")
)
