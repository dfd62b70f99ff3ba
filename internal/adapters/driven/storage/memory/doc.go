// Package memory provides in-memory implementations of driven ports.
// They back tests and the --no-history mode.
package memory
