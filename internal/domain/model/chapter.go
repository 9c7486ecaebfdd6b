package model

import (
	"time"
)

const ChapterStatusDraft = "draft"

// Chapter belongs to a book; Order defines the reading sequence. Ownership
// is transitive through the book's author.
type Chapter struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book"`
	Order     int       `json:"order"`
	Cover     *string   `json:"cover"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
