package tools

import (
	"database/sql"
	"fmt"
	"strings"
)

const noRowsMarker = "(0 rows)"

// scanAllRows drains a row set into generic values, preserving column
// and row order as returned by the database.
func scanAllRows(rows *sql.Rows) ([]string, [][]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, &ExecutionError{Err: fmt.Errorf("columns error: %v", err)}
	}

	var data [][]any
	for rows.Next() {
		vals := make([]any, len(columns))
		valPtrs := make([]any, len(columns))
		for i := range vals {
			valPtrs[i] = &vals[i]
		}
		if err := rows.Scan(valPtrs...); err != nil {
			return nil, nil, &ExecutionError{Err: fmt.Errorf("scan error: %v", err)}
		}
		data = append(data, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, &ExecutionError{Err: err}
	}

	return columns, data, nil
}

// renderRows produces the textual result payload: a comma-joined
// header line followed by one line per row. An empty result set keeps
// the header and an explicit marker so callers can tell "ran, zero
// rows" from "did not run".
func renderRows(columns []string, data [][]any) string {
	lines := []string{strings.Join(columns, ",")}

	if len(data) == 0 {
		lines = append(lines, noRowsMarker)
		return strings.Join(lines, "\n")
	}

	for _, row := range data {
		cells := make([]string, len(row))
		for i, val := range row {
			cells[i] = renderValue(val)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

func renderValue(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
