package models

// Charge is an amount billed against a booking. Status carries no database
// default: callers must state it explicitly on insert.
type Charge struct {
	ID          int32  `db:"id,type:serial,primary"`
	BookingID   int32  `db:"booking_id,type:integer,notnull,references:bookings.id,ondelete:CASCADE"`
	AmountCents int32  `db:"amount_cents,type:integer,notnull"`
	Currency    string `db:"currency,type:varchar(3),notnull,default:'USD'"`
	Status      string `db:"status,type:varchar(20),notnull"`
}

func (Charge) TableName() string { return "charges" }
