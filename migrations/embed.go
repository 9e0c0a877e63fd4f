package migrations

import "embed"

// FS holds the goose SQL migrations applied by `marketplace migrate`.
//
//go:embed *.sql
var FS embed.FS
