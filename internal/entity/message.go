package entity

import "time"

// Message is a contact-form submission shown in the dashboard inbox.
type Message struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
