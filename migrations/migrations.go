// Package migrations embeds the SQL schema for every supported storage driver.
package migrations

import "embed"

// FS holds one directory of migrations per driver: "sqlite" and "postgres".
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
