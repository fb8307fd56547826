package common

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	connURL := TestPostgres(t)

	require.NoError(t, Migrate("file://../../migrations", connURL))

	// nothing left to apply
	require.NoError(t, Migrate("file://../../migrations", connURL))

	db, err := sql.Open("postgres", connURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	var tables int
	err = db.QueryRow(`SELECT count(*) FROM information_schema.tables WHERE table_name IN ('posts', 'newsletter_subscribers')`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 2, tables)

	// only this test's connection stays open once the migrators are closed
	assert.Eventually(t, func() bool {
		var others int
		err := db.QueryRow(`SELECT count(*) FROM pg_stat_activity WHERE datname = current_database() AND pid <> pg_backend_pid()`).Scan(&others)
		return err == nil && others == 0
	}, 5*time.Second, 100*time.Millisecond)
}

func TestMigrateInvalidSource(t *testing.T) {
	connURL := TestPostgres(t)

	err := Migrate("file://does-not-exist", connURL)
	assert.ErrorContains(t, err, "could not create migrator")
}
