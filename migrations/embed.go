// Package migrations embeds the reference schema of the restaurant database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
