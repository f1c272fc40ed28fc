package models

import "time"

type Patient struct {
	ID        string    `bson:"_id"`
	Sex       int       `bson:"sex"`
	Birthdate time.Time `bson:"birthdate"`
	Initial   string    `bson:"initial"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
