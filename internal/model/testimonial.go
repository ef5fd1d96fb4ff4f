package model

import "time"

// Testimonial is a client quote shown on the public site.
type Testimonial struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	Message    string    `json:"message"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
