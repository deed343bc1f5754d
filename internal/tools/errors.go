package tools

import "fmt"

// InvocationError marks arguments rejected at the dispatch boundary,
// before any SQL is sent (empty or malformed table names, empty
// statements).
type InvocationError struct {
	Msg string
}

func (e *InvocationError) Error() string {
	return "invocation error: " + e.Msg
}

// ExecutionError marks a statement the database rejected or failed
// (syntax error, missing object, permission denied). The driver
// message passes through verbatim for diagnosability.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution error: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
