package models

import "time"

type Admin struct {
	ID        string    `bson:"_id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"` // bcrypt hash
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
