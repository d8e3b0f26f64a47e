package store

import (
	"errors"
	"strings"

	"github.com/AlexZinkM/sentinel/internal/model"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isUniqueViolation reports whether err is a SQLite unique or primary key
// constraint failure. Other errors, including other constraint failures,
// pass through unchanged.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return false
	}
	// errors rebuilt as text by a wrapper keep only the message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func conflictError(msg string, err error) error {
	return model.NewError(model.KindConflict, msg, err)
}
