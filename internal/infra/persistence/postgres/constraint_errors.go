package postgres

import (
	"foodies/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Constraint names declared by the model tags.
const (
	constraintUsersName  = "idx_users_name"
	constraintUsersEmail = "idx_users_email"
)

func pgErrorCode(err error) (string, string) {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)
	if !ok {
		return "", ""
	}

	return pgErr.Code, pgErr.ConstraintName
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgerrcode.UniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgerrcode.ForeignKeyViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgerrcode.CheckViolation
}

// violatedConstraint returns the constraint named by a PostgreSQL error, if any.
func violatedConstraint(err error) string {
	_, name := pgErrorCode(err)

	return name
}
