package validation

// CreateDeviceRequest lists a new rentable device.
type CreateDeviceRequest struct {
	OwnerID          int64   `json:"owner_id" validate:"required,gt=0"`
	Name             string  `json:"name" validate:"required,max=255"`
	Description      *string `json:"description,omitempty"`
	PricePerDayCents int32   `json:"price_per_day_cents" validate:"gte=0"`
	City             *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Region           *string `json:"region,omitempty" validate:"omitempty,max=100"`
}

// CreateChargeRequest bills an amount against a booking. Status must be
// explicit; the database carries no default for it.
type CreateChargeRequest struct {
	BookingID   int64  `json:"booking_id" validate:"required,gt=0"`
	AmountCents int32  `json:"amount_cents" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,len=3,uppercase"`
	Status      string `json:"status" validate:"required,oneof=pending paid refunded failed"`
}
