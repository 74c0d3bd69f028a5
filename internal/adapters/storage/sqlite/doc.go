// Package sqlite implements the repository ports on a SQLite database using
// the pure-Go modernc.org/sqlite driver.
//
// The schema is embedded in the migrations package and applied when the store
// is opened. Applied versions are recorded in schema_migrations, so opening an
// existing database only runs migrations it has not seen.
package sqlite
