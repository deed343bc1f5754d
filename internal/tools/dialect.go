package tools

import "fmt"

// dialect carries the two statements whose syntax differs per driver:
// the bounded table read (TOP vs LIMIT) and table introspection.
type dialect struct {
	listTablesQuery string
	limitedSelect   func(table string, limit int) string
}

var sqlServerDialect = dialect{
	listTablesQuery: `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`,
	limitedSelect: func(table string, limit int) string {
		return fmt.Sprintf("SELECT TOP %d * FROM %s", limit, table)
	},
}

var dialects = map[string]dialect{
	"sqlserver": sqlServerDialect,
	"mssql":     sqlServerDialect,
	"sqlite": {
		listTablesQuery: `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`,
		limitedSelect: func(table string, limit int) string {
			return fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, limit)
		},
	},
}

// dialectFor resolves by driver name, falling back to SQL Server for
// drivers registered under another name.
func dialectFor(driverName string) dialect {
	if d, ok := dialects[driverName]; ok {
		return d
	}
	return sqlServerDialect
}
