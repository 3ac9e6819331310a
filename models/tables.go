package models

import "github.com/Khrischatyy/fieldhire-db/schema"

// Tables reflects every declared model into table metadata, in dependency
// order (referenced tables first).
func Tables() ([]schema.Table, error) {
	return schema.FromStructs(
		User{},
		BookingStatus{},
		Device{},
		Booking{},
		Charge{},
		Address{},
		Badge{},
		AddressBadge{},
		Photo{},
	)
}
