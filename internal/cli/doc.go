// Package cli provides command-line interface setup and configuration
// for the imgtrans application. It handles flag parsing, command
// creation, settings precedence, and wiring the services for a run
// using cobra.
package cli
