// Package migrations holds the platform's migration units. Each file
// registers one unit at init time; the chain is linked and validated on
// demand. Once a revision has been applied to a shared environment it is
// frozen: fixes go in a new migration, never an edit.
package migrations

import (
	"github.com/Khrischatyy/fieldhire-db/migration"
)

var registry = migration.NewRegistry()

// Registry exposes the registered migrations.
func Registry() *migration.Registry { return registry }

// Chain links and validates the registered migrations.
func Chain() (*migration.Chain, error) {
	return migration.NewChain(registry.All())
}

func def(v string) *string { return &v }
