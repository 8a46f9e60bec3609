// Package model defines the shared error and exit code types for the
// pascal-triangle CLI.
//
// The package has no external dependencies. Domain packages return plain
// errors; the CLI layer wraps them in CLIError so that each failure maps to
// a stable process exit code.
package model
