package models

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL error numbers for the constraint violations this schema can raise.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrBadNullColumn   = 1048
	mysqlErrNoDefaultValue  = 1364
	mysqlErrNoReferencedRow = 1452
)

func mysqlErrNumber(err error) (uint16, bool) {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number, true
	}
	return 0, false
}

// IsDuplicateKey reports whether err is a uniqueness violation
// (duplicate username/email/phone/identification/room name).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if n, ok := mysqlErrNumber(err); ok {
		return n == mysqlErrDuplicateEntry
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate") || strings.Contains(lower, "unique")
}

// IsForeignKeyViolation reports whether err came from referencing a
// non-existent parent row.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if n, ok := mysqlErrNumber(err); ok {
		return n == mysqlErrNoReferencedRow
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key")
}

// IsNotNullViolation reports whether err came from inserting NULL (or
// omitting a value) into a NOT NULL column.
func IsNotNullViolation(err error) bool {
	if err == nil {
		return false
	}
	if n, ok := mysqlErrNumber(err); ok {
		return n == mysqlErrBadNullColumn || n == mysqlErrNoDefaultValue
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "cannot be null") || strings.Contains(lower, "not null")
}
