// Package seed holds one-time reference-data seeders. Seeding is coarsely
// idempotent: a seeder that finds any existing row of its kind skips the
// whole batch. Seeders are not safe for concurrent invocation; they run
// once at controlled setup time.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of a pgx connection a seeder needs. *pgx.Conn and
// *pgxpool.Pool both satisfy it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Seeder inserts one fixed reference set. Seed returns the number of rows
// inserted; zero means the set was already present and nothing was done.
type Seeder interface {
	Name() string
	Seed(ctx context.Context, db DB) (int, error)
}

// All lists every seeder the seed command runs, in order.
func All() []Seeder {
	return []Seeder{
		BookingStatuses{},
	}
}

// Run executes the given seeders in order, reporting skip vs seeded-count
// for each. The first failure aborts the run.
func Run(ctx context.Context, db DB, seeders ...Seeder) error {
	for _, s := range seeders {
		n, err := s.Seed(ctx, db)
		if err != nil {
			return fmt.Errorf("seed %s: %v", s.Name(), err)
		}
		if n == 0 {
			fmt.Printf("⏭️  %s: already seeded, skipping\n", s.Name())
		} else {
			fmt.Printf("🌱 %s: seeded %d row(s)\n", s.Name(), n)
		}
	}
	return nil
}
