// Package migrations embeds the SQL schema migrations applied at init time.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
