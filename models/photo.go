package models

import "time"

// Photo is an image attached to a device listing. Position orders photos
// within a listing, zero-based.
type Photo struct {
	ID        int32     `db:"id,type:serial,primary"`
	DeviceID  int32     `db:"device_id,type:integer,notnull,references:devices.id,ondelete:CASCADE"`
	URL       string    `db:"url,type:varchar(512),notnull"`
	Position  int32     `db:"position,type:integer,notnull,default:0"`
	CreatedAt time.Time `db:"created_at,type:timestamptz,notnull,default:now()"`
	UpdatedAt time.Time `db:"updated_at,type:timestamptz,notnull,default:now()"`
}

func (Photo) TableName() string { return "photos" }
