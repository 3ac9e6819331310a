package migrations

import (
	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/migration/op"
	"github.com/Khrischatyy/fieldhire-db/schema"
)

// Root of the chain: the initial platform schema. users still carries the
// plain `password` column here; charges has no status, devices none of the
// later boolean flags, photos no timestamps. Later revisions add those.
func init() {
	registry.MustRegister(&migration.Migration{
		Revision:     "20240301120000",
		DownRevision: "",
		Label:        "create core tables",
		Up: []op.Operation{
			op.CreateTable{
				Table: "users",
				Columns: []schema.Column{
					{Name: "id", Type: "serial", Primary: true},
					{Name: "email", Type: "varchar(255)", NotNull: true, Unique: true},
					{Name: "password", Type: "varchar(255)", NotNull: true},
					{Name: "first_name", Type: "varchar(100)"},
					{Name: "last_name", Type: "varchar(100)"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: def("now()")},
				},
			},
			op.CreateTable{
				Table: "booking_statuses",
				Columns: []schema.Column{
					{Name: "id", Type: "serial", Primary: true},
					{Name: "name", Type: "varchar(50)", NotNull: true, Unique: true},
				},
			},
			op.CreateTable{
				Table: "devices",
				Columns: []schema.Column{
					{Name: "id", Type: "serial", Primary: true},
					{Name: "owner_id", Type: "integer", NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "users", ReferencesColumn: "id", OnDelete: "CASCADE"}},
					{Name: "name", Type: "varchar(255)", NotNull: true},
					{Name: "description", Type: "text"},
					{Name: "price_per_day_cents", Type: "integer", NotNull: true},
					{Name: "city", Type: "varchar(100)"},
					{Name: "region", Type: "varchar(100)"},
					{Name: "available", Type: "boolean", NotNull: true, Default: def("true")},
				},
			},
			op.CreateTable{
				Table: "bookings",
				Columns: []schema.Column{
					{Name: "id", Type: "serial", Primary: true},
					{Name: "user_id", Type: "integer", NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "users", ReferencesColumn: "id"}},
					{Name: "device_id", Type: "integer", NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "devices", ReferencesColumn: "id"}},
					{Name: "status_id", Type: "integer", NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "booking_statuses", ReferencesColumn: "id"}},
					{Name: "starts_on", Type: "date", NotNull: true},
					{Name: "ends_on", Type: "date", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: def("now()")},
				},
			},
			op.CreateTable{
				Table: "charges",
				Columns: []schema.Column{
					{Name: "id", Type: "serial", Primary: true},
					{Name: "booking_id", Type: "integer", NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "bookings", ReferencesColumn: "id", OnDelete: "CASCADE"}},
					{Name: "amount_cents", Type: "integer", NotNull: true},
					{Name: "currency", Type: "varchar(3)", NotNull: true, Default: def("'USD'")},
				},
			},
			op.CreateTable{
				Table: "addresses",
				Columns: []schema.Column{
					{Name: "id", Type: "serial", Primary: true},
					{Name: "user_id", Type: "integer", NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "users", ReferencesColumn: "id", OnDelete: "CASCADE"}},
					{Name: "line1", Type: "varchar(255)", NotNull: true},
					{Name: "line2", Type: "varchar(255)"},
					{Name: "city", Type: "varchar(100)", NotNull: true},
					{Name: "postal_code", Type: "varchar(20)"},
					{Name: "country", Type: "varchar(2)", NotNull: true},
				},
			},
			op.CreateTable{
				Table: "badges",
				Columns: []schema.Column{
					{Name: "id", Type: "serial", Primary: true},
					{Name: "name", Type: "varchar(100)", NotNull: true, Unique: true},
				},
			},
			op.CreateTable{
				Table: "photos",
				Columns: []schema.Column{
					{Name: "id", Type: "serial", Primary: true},
					{Name: "device_id", Type: "integer", NotNull: true,
						ForeignKey: &schema.ForeignKey{ReferencesTable: "devices", ReferencesColumn: "id", OnDelete: "CASCADE"}},
					{Name: "url", Type: "varchar(512)", NotNull: true},
					{Name: "position", Type: "integer", NotNull: true, Default: def("0")},
				},
			},
		},
		Down: []op.Operation{
			op.DropTable{Table: "photos"},
			op.DropTable{Table: "badges"},
			op.DropTable{Table: "addresses"},
			op.DropTable{Table: "charges"},
			op.DropTable{Table: "bookings"},
			op.DropTable{Table: "devices"},
			op.DropTable{Table: "booking_statuses"},
			op.DropTable{Table: "users"},
		},
	})
}
