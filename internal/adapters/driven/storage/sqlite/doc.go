// Package sqlite provides the SQLite-backed meeting history.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.minutes/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on SQLite's own locking
// in WAL mode.
package sqlite
