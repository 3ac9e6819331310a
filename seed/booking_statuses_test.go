package seed

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB stands in for a pgx connection over a booking_statuses table.
type fakeDB struct {
	rows     []string
	execs    []string
	failExec bool
}

type fakeRow struct {
	exists bool
}

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != 1 {
		return fmt.Errorf("expected 1 destination, got %d", len(dest))
	}
	b, ok := dest[0].(*bool)
	if !ok {
		return fmt.Errorf("expected *bool destination, got %T", dest[0])
	}
	*b = r.exists
	return nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return fakeRow{exists: len(db.rows) > 0}
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if db.failExec {
		return pgconn.CommandTag{}, fmt.Errorf("boom")
	}
	db.execs = append(db.execs, sql)
	for _, a := range args {
		db.rows = append(db.rows, a.(string))
	}
	return pgconn.NewCommandTag(fmt.Sprintf("INSERT 0 %d", len(args))), nil
}

func TestSeedInsertsFixedListInOrder(t *testing.T) {
	db := &fakeDB{}

	n, err := BookingStatuses{}.Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 rows inserted, got %d", n)
	}

	want := []string{"pending", "confirmed", "cancelled", "expired", "completed"}
	if len(db.rows) != len(want) {
		t.Fatalf("expected %d rows, got %v", len(want), db.rows)
	}
	for i, name := range want {
		if db.rows[i] != name {
			t.Errorf("position %d: expected %s, got %s", i, name, db.rows[i])
		}
	}

	// The whole list goes in one batch statement.
	if len(db.execs) != 1 {
		t.Fatalf("expected 1 insert statement, got %d", len(db.execs))
	}
	if !strings.HasPrefix(db.execs[0], "INSERT INTO booking_statuses") {
		t.Errorf("unexpected statement %q", db.execs[0])
	}
}

func TestSeedSkipsWhenAnyRowExists(t *testing.T) {
	db := &fakeDB{}

	if _, err := (BookingStatuses{}).Seed(context.Background(), db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}

	n, err := BookingStatuses{}.Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected skip on second run, got %d inserts", n)
	}
	if len(db.rows) != 5 {
		t.Fatalf("expected rows unchanged, got %v", db.rows)
	}
	if len(db.execs) != 1 {
		t.Fatalf("expected no further statements, got %d", len(db.execs))
	}
}

func TestSeedSkipsPartialSets(t *testing.T) {
	// Coarse idempotence: any pre-existing row short-circuits the batch.
	db := &fakeDB{rows: []string{"pending"}}

	n, err := BookingStatuses{}.Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected skip, got %d inserts", n)
	}
	if len(db.rows) != 1 {
		t.Fatalf("expected rows unchanged, got %v", db.rows)
	}
}

func TestSeedPropagatesInsertFailure(t *testing.T) {
	db := &fakeDB{failExec: true}

	_, err := BookingStatuses{}.Seed(context.Background(), db)
	if err == nil || !strings.Contains(err.Error(), "insert booking statuses") {
		t.Fatalf("expected insert error, got %v", err)
	}
}

func TestRunReportsAllSeeders(t *testing.T) {
	db := &fakeDB{}

	if err := Run(context.Background(), db, All()...); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(db.rows) != 5 {
		t.Fatalf("expected booking statuses seeded, got %v", db.rows)
	}

	// Second run is a no-op.
	if err := Run(context.Background(), db, All()...); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(db.rows) != 5 {
		t.Fatalf("expected rows unchanged, got %v", db.rows)
	}
}
