package main

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func migrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations")
}

func TestCollectMigrations_VersionsInOrder(t *testing.T) {
	migrations, err := goose.CollectMigrations(migrationsDir(t), 0, goose.MaxVersion)
	require.NoError(t, err)

	got := make([]string, 0, len(migrations))
	for _, m := range migrations {
		got = append(got, filepath.Base(m.Source))
	}
	assert.Equal(t, []string{
		"00001_catalog.sql",
		"00002_loans_and_fines.sql",
		"00003_accounts.sql",
		"00004_revoked_tokens.sql",
	}, got)
}
