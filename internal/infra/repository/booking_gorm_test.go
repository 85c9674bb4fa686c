package repository

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds SQL without touching a server; pgx connects lazily and
// the automatic ping is disabled.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

// The conflict check must stay a row-level SELECT ... FOR UPDATE. Postgres
// rejects a locking clause on an aggregate (SQLSTATE 0A000), which would
// fail every booking creation.
func TestLockActiveSlotIsRowLevelQuery(t *testing.T) {
	db := newDryRunDB(t)

	var held []uint
	stmt := lockActiveSlot(db, 7, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)).
		Pluck("id", &held).Statement

	sql := strings.ToLower(stmt.SQL.String())
	assert.Contains(t, sql, "for update")
	assert.Contains(t, sql, "limit")
	assert.NotContains(t, sql, "count(")
	assert.Contains(t, sql, "barber_id = ")
	assert.Contains(t, sql, "status in ")
}

// A losing concurrent insert surfaces as a unique violation on the partial
// slot index and must read as the regular slot conflict.
func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
	assert.False(t, isUniqueViolation(nil))
}
