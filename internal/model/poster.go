package model

import "time"

// Poster is a promotional banner shown in the homepage carousel.
// Priority runs 1-10; lower values are shown first.
type Poster struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Priority  int       `json:"priority"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
