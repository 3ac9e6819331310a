package migrations

import (
	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/migration/op"
	"github.com/Khrischatyy/fieldhire-db/schema"
)

// Two-step mandatory column: the temporary DEFAULT 'pending' exists only to
// backfill rows that predate the column, then it is stripped so every new
// charge must state its status explicitly. Downgrade drops the column and
// its data; that loss is accepted.
func init() {
	registry.MustRegister(&migration.Migration{
		Revision:     "20240402101500",
		DownRevision: "20240318094500",
		Label:        "add charges.status",
		Up: []op.Operation{
			op.AddColumn{
				Table: "charges",
				Column: schema.Column{
					Name:    "status",
					Type:    "varchar(20)",
					NotNull: true,
					Default: def("'pending'"),
				},
			},
			op.DropDefault{Table: "charges", Column: "status"},
		},
		Down: []op.Operation{
			op.DropColumn{Table: "charges", Column: "status"},
		},
	})
}
