package models

import "time"

// BookingStatus is reference data seeded once at setup time
// (see the seed package).
type BookingStatus struct {
	ID   int32  `db:"id,type:serial,primary"`
	Name string `db:"name,type:varchar(50),notnull,unique"`
}

func (BookingStatus) TableName() string { return "booking_statuses" }

type Booking struct {
	ID        int32     `db:"id,type:serial,primary"`
	UserID    int32     `db:"user_id,type:integer,notnull,references:users.id"`
	DeviceID  int32     `db:"device_id,type:integer,notnull,references:devices.id"`
	StatusID  int32     `db:"status_id,type:integer,notnull,references:booking_statuses.id"`
	StartsOn  time.Time `db:"starts_on,type:date,notnull"`
	EndsOn    time.Time `db:"ends_on,type:date,notnull"`
	CreatedAt time.Time `db:"created_at,type:timestamptz,notnull,default:now()"`
}

func (Booking) TableName() string { return "bookings" }
