//go:build unit

package repository

import (
	"fmt"
	"testing"

	"jobradar/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}

	tests := []struct {
		name    string
		err     error
		unique  bool
		foreign bool
	}{
		{"unique violation", dup, true, false},
		{"foreign key violation", fk, false, true},
		{"wrapped unique violation", fmt.Errorf("insert failed: %w", dup), true, false},
		{"wrapped foreign key violation", errs.Wrap(fk, "insert failed"), false, true},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, false, false},
		{"plain error", errs.New("connection reset"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueViolation(tt.err))
			assert.Equal(t, tt.foreign, isForeignKeyViolation(tt.err))
		})
	}
}
