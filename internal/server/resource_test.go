package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFromURI(t *testing.T) {
	table, err := tableFromURI("mssql://users/data")
	require.NoError(t, err)
	assert.Equal(t, "users", table)
}

func TestTableResources(t *testing.T) {
	resources := tableResources([]string{"orders", "users"})
	require.Len(t, resources, 2)

	assert.Equal(t, "mssql://orders/data", resources[0].URI)
	assert.Equal(t, "Table: orders", resources[0].Name)
	assert.Equal(t, "text/plain", resources[0].MIMEType)
	assert.Equal(t, "mssql://users/data", resources[1].URI)
}

func TestTableResourcesEmpty(t *testing.T) {
	resources := tableResources(nil)
	require.NotNil(t, resources)
	assert.Empty(t, resources)
}

func TestTableFromURIInvalid(t *testing.T) {
	invalid := []string{
		"postgres://users/data",
		"mssql://users",
		"mssql:///data",
		"mssql://users/schema",
		"users/data",
	}

	for _, uri := range invalid {
		t.Run(uri, func(t *testing.T) {
			_, err := tableFromURI(uri)
			assert.Error(t, err)
		})
	}
}
