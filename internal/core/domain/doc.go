// Package domain defines the core value types for utilkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines:
//
//   - FixedTimestamp: the constant returned by the clock service
//   - OutputFormat: how the CLI renders results
//   - AppSettings: user preferences persisted in the config store
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
