// Package dbtest opens throwaway seeded databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/lshigami/examportal/config"
	"github.com/lshigami/examportal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config returns a config pointing at a fresh file under t.TempDir with the cheapest bcrypt cost.
func Config(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Title = "Online Exam Portal"
	cfg.App.Author = "Gideon"
	cfg.App.AboutImage = filepath.Join(t.TempDir(), "missing.jpg")
	cfg.Database.Path = filepath.Join(t.TempDir(), "examportal.db")
	cfg.Database.LogLevel = "silent"
	cfg.Auth.BcryptCost = 4
	return cfg
}

// Open returns an initialized database closed at test cleanup.
func Open(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	db, err := database.NewDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Initialize(db))
	return db
}
