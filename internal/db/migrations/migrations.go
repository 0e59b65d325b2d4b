// Package migrations embeds the goose SQL migrations.
package migrations

import "embed"

// FS содержит SQL-миграции, применяемые goose.
//
//go:embed *.sql
var FS embed.FS
