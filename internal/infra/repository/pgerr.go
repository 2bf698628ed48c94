package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"tripcore/internal/infra"
)

const (
	pgErrCodeUniqueViolation = "23505"
	pgErrCodeForeignKey      = "23503"
	pgErrCodeCheckViolation  = "23514"
)

func kindFromPgError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrCodeForeignKey:
			return infra.KindForeignKeyViolated
		case pgErrCodeCheckViolation:
			return infra.KindConflict
		}
	}
	return infra.KindDBFailure
}
