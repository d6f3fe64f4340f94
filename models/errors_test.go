package models

import (
	"errors"
	"fmt"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql 1062", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'tri123' for key 'users.idx_users_username'"}, true},
		{"wrapped mysql 1062", fmt.Errorf("create user: %w", &mysql.MySQLError{Number: 1062}), true},
		{"mysql fk error is not duplicate", &mysql.MySQLError{Number: 1452}, false},
		{"gorm sentinel", gorm.ErrDuplicatedKey, true},
		{"sqlite message", errors.New("UNIQUE constraint failed: users.username"), true},
		{"unrelated", errors.New("connection refused"), false},
	}
	for _, c := range cases {
		if got := IsDuplicateKey(c.err); got != c.want {
			t.Errorf("%s: IsDuplicateKey = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql 1452", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"}, true},
		{"wrapped mysql 1452", fmt.Errorf("create rental: %w", &mysql.MySQLError{Number: 1452}), true},
		{"mysql duplicate is not fk", &mysql.MySQLError{Number: 1062}, false},
		{"gorm sentinel", gorm.ErrForeignKeyViolated, true},
		{"sqlite message", errors.New("FOREIGN KEY constraint failed"), true},
		{"unrelated", errors.New("syntax error"), false},
	}
	for _, c := range cases {
		if got := IsForeignKeyViolation(c.err); got != c.want {
			t.Errorf("%s: IsForeignKeyViolation = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsNotNullViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql 1048", &mysql.MySQLError{Number: 1048, Message: "Column 'name' cannot be null"}, true},
		{"mysql 1364", &mysql.MySQLError{Number: 1364, Message: "Field 'deposit' doesn't have a default value"}, true},
		{"sqlite message", errors.New("NOT NULL constraint failed: rooms.image"), true},
		{"unrelated", errors.New("table is full"), false},
	}
	for _, c := range cases {
		if got := IsNotNullViolation(c.err); got != c.want {
			t.Errorf("%s: IsNotNullViolation = %v, want %v", c.name, got, c.want)
		}
	}
}
