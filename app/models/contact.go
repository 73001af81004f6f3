package models

import "time"

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	Name       string    `json:"name"        bson:"name"`
	Email      string    `json:"email"       bson:"email"`
	Message    string    `json:"message"     bson:"message"`
	ReceivedAt time.Time `json:"received_at" bson:"received_at"`
}
