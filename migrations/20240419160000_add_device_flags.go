package migrations

import (
	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/migration/op"
	"github.com/Khrischatyy/fieldhire-db/schema"
)

// Grouped add of listing flags with literal defaults; the downgrade drops
// them in reverse order.
func init() {
	registry.MustRegister(&migration.Migration{
		Revision:     "20240419160000",
		DownRevision: "20240402101500",
		Label:        "add device listing flags",
		Up: []op.Operation{
			op.AddColumn{
				Table: "devices",
				Column: schema.Column{Name: "delivery_available", Type: "boolean", NotNull: true, Default: def("false")},
			},
			op.AddColumn{
				Table: "devices",
				Column: schema.Column{Name: "insurance_included", Type: "boolean", NotNull: true, Default: def("false")},
			},
			op.AddColumn{
				Table: "devices",
				Column: schema.Column{Name: "instant_book", Type: "boolean", NotNull: true, Default: def("true")},
			},
		},
		Down: []op.Operation{
			op.DropColumn{Table: "devices", Column: "instant_book"},
			op.DropColumn{Table: "devices", Column: "insurance_included"},
			op.DropColumn{Table: "devices", Column: "delivery_available"},
		},
	})
}
