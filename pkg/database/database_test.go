package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestOpenSQLite(t *testing.T) {
	db, err := Open(Options{
		Driver:   DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "catalog.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	db, err := Open(Options{
		Driver:   DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "catalog.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var folded string
	require.NoError(t, db.Raw("SELECT LOWER(?)", "ÄÄNI Öljy DG-1").Scan(&folded).Error)
	assert.Equal(t, "ääni öljy dg-1", folded)
}

func TestUnicodeLower(t *testing.T) {
	assert.Equal(t, "ääni", unicodeLower("ÄÄNI"))
	assert.Equal(t, "öljy", unicodeLower([]byte("ÖLJY")))
	assert.Nil(t, unicodeLower([]byte(nil)))
	assert.Equal(t, int64(7), unicodeLower(int64(7)))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported driver")
}

func TestOpenRequiresDSN(t *testing.T) {
	_, err := Open(Options{Driver: DriverPostgres})
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, logger.Warn, level)

	level, err = ParseLogLevel("INFO")
	require.NoError(t, err)
	assert.Equal(t, logger.Info, level)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}
