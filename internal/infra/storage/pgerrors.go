package storage

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE коды PostgreSQL
const (
	CodeUniqueViolation      = "23505"
	CodeSerializationFailure = "40001"
)

// IsUniqueViolation возвращает true для нарушения уникального ограничения
// Поддерживает оба драйвера: lib/pq и pgx stdlib
func IsUniqueViolation(err error) bool {
	return hasCode(err, CodeUniqueViolation)
}

// IsSerializationFailure возвращает true, если сериализуемая транзакция не смогла закоммититься
func IsSerializationFailure(err error) bool {
	return hasCode(err, CodeSerializationFailure)
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
