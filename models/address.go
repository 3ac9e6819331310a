package models

type Address struct {
	ID         int32   `db:"id,type:serial,primary"`
	UserID     int32   `db:"user_id,type:integer,notnull,references:users.id,ondelete:CASCADE"`
	Line1      string  `db:"line1,type:varchar(255),notnull"`
	Line2      *string `db:"line2,type:varchar(255)"`
	City       string  `db:"city,type:varchar(100),notnull"`
	PostalCode *string `db:"postal_code,type:varchar(20)"`
	Country    string  `db:"country,type:varchar(2),notnull"`
}

func (Address) TableName() string { return "addresses" }

type Badge struct {
	ID   int32  `db:"id,type:serial,primary"`
	Name string `db:"name,type:varchar(100),notnull,unique"`
}

func (Badge) TableName() string { return "badges" }

// AddressBadge links an address to a badge. The pair is the primary key.
type AddressBadge struct {
	AddressID int32 `db:"address_id,type:integer,primary,notnull,references:addresses.id,ondelete:CASCADE"`
	BadgeID   int32 `db:"badge_id,type:integer,primary,notnull,references:badges.id,ondelete:CASCADE"`
}

func (AddressBadge) TableName() string { return "address_badge" }
