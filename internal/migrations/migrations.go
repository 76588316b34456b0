// Package migrations embeds the goose schema migrations. Each supported
// dialect has its own directory; the store selects one at open time.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
