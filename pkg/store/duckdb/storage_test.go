package duckdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_BootSchemas(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "duckdb-test-*")
	require.NoError(t, err)

	defer func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			t.Errorf("failed to cleanup test directory: %v", err)
		}
	}()

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := NewDB(Settings{
		DbPath: dbPath,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	defer func() {
		err := db.Close()
		if err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	}()

	_, err = db.Exec(
		`INSERT INTO companies (name, default_currency) VALUES (?, ?)`,
		"Alpha GmbH", "EUR",
	)
	require.NoError(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM companies WHERE name = ?", "Alpha GmbH").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = db.Exec(
		`INSERT INTO orders (kind, name, company, status, transaction_date, grand_total, per_billed, currency)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"sales_order", "SO-0001", "Alpha GmbH", "To Deliver and Bill", "2026-02-10", 1000.0, 40.0, "EUR",
	)
	require.NoError(t, err)

	err = db.QueryRow("SELECT COUNT(*) FROM orders WHERE kind = ?", "sales_order").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
