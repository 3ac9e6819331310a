package models

// Device is a rentable item listed by a user.
type Device struct {
	ID                int32   `db:"id,type:serial,primary"`
	OwnerID           int32   `db:"owner_id,type:integer,notnull,references:users.id,ondelete:CASCADE"`
	Name              string  `db:"name,type:varchar(255),notnull"`
	Description       *string `db:"description,type:text"`
	PricePerDayCents  int32   `db:"price_per_day_cents,type:integer,notnull"`
	City              *string `db:"city,type:varchar(100)"`
	Region            *string `db:"region,type:varchar(100)"`
	Available         bool    `db:"available,type:boolean,notnull,default:true"`
	DeliveryAvailable bool    `db:"delivery_available,type:boolean,notnull,default:false"`
	InsuranceIncluded bool    `db:"insurance_included,type:boolean,notnull,default:false"`
	InstantBook       bool    `db:"instant_book,type:boolean,notnull,default:true"`
}

func (Device) TableName() string { return "devices" }
