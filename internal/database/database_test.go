package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "month_stats", "match_records", "selections"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "querying for %s table should not produce an error", table)
		assert.Equal(t, table, name, "the %q table should be created", table)
	}
}

func TestInitDB_IsIdempotent(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	teardown()

	db, teardown, err = InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM players").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
