// Package migrations embeds the SQL schema migrations for the SQLite store.
package migrations

import "embed"

// FS holds every *.up.sql file, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
