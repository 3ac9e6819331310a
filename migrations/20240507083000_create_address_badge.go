package migrations

import (
	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/migration/op"
	"github.com/Khrischatyy/fieldhire-db/schema"
)

// Join table with a composite primary key. Downgrade drops the whole table
// and its rows; that loss is accepted.
func init() {
	registry.MustRegister(&migration.Migration{
		Revision:     "20240507083000",
		DownRevision: "20240419160000",
		Label:        "create address_badge",
		Up: []op.Operation{
			op.CreateTable{
				Table: "address_badge",
				Columns: []schema.Column{
					{Name: "address_id", Type: "integer", Primary: true, NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "addresses", ReferencesColumn: "id", OnDelete: "CASCADE"}},
					{Name: "badge_id", Type: "integer", Primary: true, NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "badges", ReferencesColumn: "id", OnDelete: "CASCADE"}},
				},
				PrimaryKey: []string{"address_id", "badge_id"},
			},
		},
		Down: []op.Operation{
			op.DropTable{Table: "address_badge"},
		},
	})
}
