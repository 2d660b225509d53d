// Package migrations holds the goose SQL migrations for the tracking schema.
package migrations

import "embed"

// FS contains every migration file, rooted at the package directory.
//
//go:embed *.sql
var FS embed.FS
