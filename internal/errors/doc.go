// Package errors provides structured, actionable error messages for fibre's
// own tooling and runtime diagnostics.
//
// The errors package implements a small error system that:
//   - Shows exact source locations (file, line, column) where applicable
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with code examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - reactive: the signal graph (cycle limits, disposed access, panics)
//   - render: the fine-grained renderer and its Platform backends
//   - protocol: the domhost WebSocket wire protocol
//   - config: command-line configuration (e.g. the dev server's --port flag)
//   - cli: errors raised by the fibre command itself
//
// # Error Codes
//
// Each error has a unique code (e.g., "E102") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E102").
//	    WithDetail("counter recomputed 143 times in one flush").
//	    WithSuggestion("check whether the effect writes back to its own dependency")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Cycle limit exceeded
//	//
//	//   counter recomputed 143 times in one flush
//	//
//	//   Hint: check whether the effect writes back to its own dependency
//	//
//	//   Learn more: https://fibre.dev/docs/errors/E102
package errors
