// Package migrations embeds the SQL schema so the server binary carries it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
