package migrations

import (
	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/migration/op"
)

// Raw statements: the structured vocabulary has no combined add-and-backfill
// for database-computed defaults. Unlike charges.status, the now() default
// stays on after the backfill: a photo's timestamps should default to the
// insertion time. Downgrade drops both columns; that loss is accepted.
func init() {
	registry.MustRegister(&migration.Migration{
		Revision:     "20240522143000",
		DownRevision: "20240507083000",
		Label:        "add photo timestamps",
		Up: []op.Operation{
			op.RawSQL{
				Summary: "add photos.created_at and photos.updated_at with now() default, backfill existing rows",
				Stmts: []string{
					`ALTER TABLE "photos" ADD COLUMN "created_at" timestamptz NOT NULL DEFAULT now();`,
					`ALTER TABLE "photos" ADD COLUMN "updated_at" timestamptz NOT NULL DEFAULT now();`,
					`UPDATE "photos" SET "created_at" = now(), "updated_at" = now();`,
				},
			},
		},
		Down: []op.Operation{
			op.RawSQL{
				Summary: "drop photos.created_at and photos.updated_at",
				Stmts: []string{
					`ALTER TABLE "photos" DROP COLUMN "updated_at";`,
					`ALTER TABLE "photos" DROP COLUMN "created_at";`,
				},
			},
		},
	})
}
