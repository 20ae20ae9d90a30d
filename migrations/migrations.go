// Package migrations embeds the SQL migration files so the server binary
// can run them without access to the source tree.
package migrations

import "embed"

// FS holds the goose migration files.
//
//go:embed *.sql
var FS embed.FS
