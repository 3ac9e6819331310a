package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// CreateBookingRequest books a device for a date range (inclusive dates,
// YYYY-MM-DD).
type CreateBookingRequest struct {
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	DeviceID int64  `json:"device_id" validate:"required,gt=0"`
	StartsOn string `json:"starts_on" validate:"required,datetime=2006-01-02"`
	EndsOn   string `json:"ends_on" validate:"required,datetime=2006-01-02"`
}

// validateBookingDates rejects ranges that end before they start. Field
// format errors are left to the datetime tag.
func validateBookingDates(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateBookingRequest)

	starts, err1 := time.Parse(dateLayout, req.StartsOn)
	ends, err2 := time.Parse(dateLayout, req.EndsOn)
	if err1 != nil || err2 != nil {
		return
	}

	if ends.Before(starts) {
		sl.ReportError(req.EndsOn, "EndsOn", "ends_on", "gtefield", "StartsOn")
	}
}
