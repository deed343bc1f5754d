package tools

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestRenderRows(t *testing.T) {
	columns := []string{"id", "name", "email"}
	data := [][]any{
		{int64(1), "alice", "alice@example.com"},
		{int64(2), []byte("bob"), nil},
	}

	text := renderRows(columns, data)
	assert.Equal(t, "id,name,email\n1,alice,alice@example.com\n2,bob,NULL", text)
}

func TestRenderRowsEmpty(t *testing.T) {
	text := renderRows([]string{"id", "name"}, nil)

	// Zero rows still renders the header and an explicit marker, so a
	// successful empty result is distinguishable from no result at all.
	assert.Equal(t, "id,name\n(0 rows)", text)
}

func TestRenderRowsPreservesColumnOrder(t *testing.T) {
	columns := []string{"z", "a", "m"}
	data := [][]any{{1, 2, 3}}

	assert.Equal(t, "z,a,m\n1,2,3", renderRows(columns, data))
}

func TestScanAllRowsFailureIsExecutionError(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query("SELECT 1 AS one")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	_, _, err = scanAllRows(rows)
	require.Error(t, err)

	var execErr *ExecutionError
	assert.ErrorAs(t, err, &execErr)
}
