package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regulardicers/dicers-backend/internal/config"
)

func TestNewMemoryDB_IsolatedAndForeignKeysOn(t *testing.T) {
	first, err := NewMemoryDB()
	require.NoError(t, err)
	second, err := NewMemoryDB()
	require.NoError(t, err)

	require.NoError(t, first.Exec(`CREATE TABLE probe (id INTEGER PRIMARY KEY)`).Error)

	assert.True(t, first.Migrator().HasTable("probe"))
	assert.False(t, second.Migrator().HasTable("probe"), "memory databases must not be shared")

	var fk int
	require.NoError(t, first.Raw(`PRAGMA foreign_keys`).Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestNewGormDB_SQLiteFile(t *testing.T) {
	cfg := &config.DBConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "dicers.sqlite"),
		MaxOpenConns: 2,
	}

	gdb, err := NewGormDB(cfg)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, sqlDB.Ping())
	assert.Equal(t, 2, sqlDB.Stats().MaxOpenConnections)
}
