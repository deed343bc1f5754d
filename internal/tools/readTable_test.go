package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTableSuccess(t *testing.T) {
	connector := newTestConnector(t)

	text, err := ReadTableText(context.Background(), connector, "users")
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, seededUserCount+1)
	assert.Equal(t, "id,name,email", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
	assert.True(t, strings.HasPrefix(lines[seededUserCount], "5,"))
}

func TestReadTableEmptyTable(t *testing.T) {
	connector := newTestConnector(t)

	// An existing table with no rows is a success, not an error.
	text, err := ReadTableText(context.Background(), connector, "empty_table")
	require.NoError(t, err)
	assert.Equal(t, "id\n(0 rows)", text)
}

func TestReadTableRejectsBeforeConnecting(t *testing.T) {
	// The connector cannot open a connection, so any error other than
	// an invocation error would mean SQL was about to be sent.
	connector := brokenConnector()

	rejected := []string{
		"",
		"1; DROP TABLE x",
		"users; DELETE FROM users",
		"users' OR '1'='1",
	}

	for _, name := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := ReadTableText(context.Background(), connector, name)
			require.Error(t, err)

			var invErr *InvocationError
			assert.ErrorAs(t, err, &invErr)
		})
	}
}

func TestReadTableMissingTable(t *testing.T) {
	connector := newTestConnector(t)

	_, err := ReadTableText(context.Background(), connector, "no_such_table")
	require.Error(t, err)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	// The driver message identifying the missing object passes through.
	assert.Contains(t, err.Error(), "no_such_table")
}
