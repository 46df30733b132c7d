// Package mangatrade holds assets shared by every binary of the project.
package mangatrade

import "embed"

// Migrations contains the goose SQL migrations for all SQL storage backends.
//
//go:embed migrations/*.sql
var Migrations embed.FS
