package tools

import (
	"fmt"
	"regexp"
	"strings"
)

// A table name lands in the identifier position of a SELECT, which
// standard SQL cannot parameterize. Only identifier-safe characters
// are admitted before interpolation, optionally schema-qualified.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// maxIdentifierLength matches the SQL Server sysname limit.
const maxIdentifierLength = 128

func validateTableName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvocationError{Msg: "table name must not be empty"}
	}

	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return &InvocationError{Msg: fmt.Sprintf("invalid table name %q: at most one schema qualifier allowed", name)}
	}
	for _, part := range parts {
		if len(part) > maxIdentifierLength {
			return &InvocationError{Msg: fmt.Sprintf("invalid table name %q: identifier exceeds %d characters", name, maxIdentifierLength)}
		}
		if !identifierPattern.MatchString(part) {
			return &InvocationError{Msg: fmt.Sprintf("invalid table name %q: only letters, digits and underscores allowed", name)}
		}
	}
	return nil
}

// quoteIdentifier bracket-quotes a validated table name for T-SQL.
func quoteIdentifier(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = "[" + part + "]"
	}
	return strings.Join(parts, ".")
}

// stripCommentLines removes "--" comment lines so statement
// classification sees the first real keyword. The original statement
// is always the one executed.
func stripCommentLines(statement string) string {
	var kept []string
	for _, line := range strings.Split(statement, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// isSelectStatement reports whether the statement should go through
// the query path (produces rows) rather than the exec path.
func isSelectStatement(statement string) bool {
	cleaned := strings.ToUpper(stripCommentLines(statement))
	return strings.HasPrefix(cleaned, "SELECT")
}
