package models

import "time"

// ContactMessage is write-only: the site records it and relays it by email,
// nothing reads it back.
type ContactMessage struct {
	ID      string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string    `bson:"name" json:"name"`
	Email   string    `bson:"email" json:"email"`
	Message string    `bson:"message" json:"message"`
	Date    time.Time `bson:"date" json:"date"`
}
