package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kode error PostgreSQL yang relevan untuk mapping konflik.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation: pelanggaran unique index/constraint (duplikat).
func IsUniqueViolation(err error) bool {
	return pgCode(err) == CodeUniqueViolation
}

// IsForeignKeyViolation: baris masih direferensikan (RESTRICT) atau FK tidak valid.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == CodeForeignKeyViolation
}
