package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fsdevblog/groph-payhook/internal/domain"
)

// Коды ошибок postgres, которые различает слой репозитория.
const (
	uniqueViolationCode      = "23505"
	checkViolationCode       = "23514"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

var pgCodeErrors = map[string]error{
	uniqueViolationCode:      domain.ErrDuplicateKey,
	checkViolationCode:       domain.ErrConstraint,
	serializationFailureCode: domain.ErrConflict,
	deadlockDetectedCode:     domain.ErrConflict,
}

// convertErr приводит ошибку драйвера к ошибке домена и добавляет контекст из format.
// pgx.ErrNoRows - domain.ErrRecordNotFound, известные коды postgres - по таблице pgCodeErrors,
// все остальное - domain.ErrUnknown с исходным текстом.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			errType = mapped
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
