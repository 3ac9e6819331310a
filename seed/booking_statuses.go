package seed

import (
	"context"
	"fmt"
	"strings"
)

// bookingStatusNames is the fixed reference set, in insertion order.
var bookingStatusNames = []string{
	"pending",
	"confirmed",
	"cancelled",
	"expired",
	"completed",
}

// BookingStatuses seeds the booking_statuses reference table.
type BookingStatuses struct{}

func (BookingStatuses) Name() string { return "booking statuses" }

// Seed inserts the full status list in one statement. Any pre-existing row
// short-circuits the whole batch; single-statement atomicity means a failed
// insert persists nothing and a retry is safe.
func (BookingStatuses) Seed(ctx context.Context, db DB) (int, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM booking_statuses);`).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("check existing booking statuses: %v", err)
	}
	if exists {
		return 0, nil
	}

	placeholders := make([]string, len(bookingStatusNames))
	args := make([]any, len(bookingStatusNames))
	for i, name := range bookingStatusNames {
		placeholders[i] = fmt.Sprintf("($%d)", i+1)
		args[i] = name
	}

	tag, err := db.Exec(ctx,
		fmt.Sprintf(`INSERT INTO booking_statuses (name) VALUES %s;`, strings.Join(placeholders, ", ")),
		args...)
	if err != nil {
		return 0, fmt.Errorf("insert booking statuses: %v", err)
	}

	return int(tag.RowsAffected()), nil
}
