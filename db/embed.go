// Package db embeds the SQL migration sources shipped with the binary.
package db

import "embed"

// Migrations holds the versioned SQL migrations under db/migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
