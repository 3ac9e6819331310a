package migrations

import (
	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/migration/op"
)

// Pure rename, fully reversible: no data is touched.
func init() {
	registry.MustRegister(&migration.Migration{
		Revision:     "20240318094500",
		DownRevision: "20240301120000",
		Label:        "rename users.password to hashed_password",
		Up: []op.Operation{
			op.RenameColumn{Table: "users", From: "password", To: "hashed_password"},
		},
		Down: []op.Operation{
			op.RenameColumn{Table: "users", From: "hashed_password", To: "password"},
		},
	})
}
