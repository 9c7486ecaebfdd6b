package model

import (
	"time"
)

const (
	BookStatusOngoing   = "ongoing"
	BookStatusCompleted = "completed"
)

type Book struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Cover       *string   `json:"cover"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
