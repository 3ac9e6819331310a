// Package models declares the platform entities as they exist at the head
// of the migration chain. The `db` tags are the single source of truth the
// schema loader reflects into table metadata for drift detection.
package models

import "time"

type User struct {
	ID             int32     `db:"id,type:serial,primary"`
	Email          string    `db:"email,type:varchar(255),notnull,unique"`
	HashedPassword string    `db:"hashed_password,type:varchar(255),notnull"`
	FirstName      *string   `db:"first_name,type:varchar(100)"`
	LastName       *string   `db:"last_name,type:varchar(100)"`
	CreatedAt      time.Time `db:"created_at,type:timestamptz,notnull,default:now()"`
}

func (User) TableName() string { return "users" }
