// Package migrations holds the schema of the postgres account store:
// campaign and affiliate link records, holdings and settlements.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the engine expects. db.Migrate moves the
// database to exactly this version.
const Version = 1
