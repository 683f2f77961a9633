package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is the persistent content record. AuthorID is mandatory and immutable
// after creation; the member document is joined at read time.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWithAuthor is a post eagerly joined with its author, the shape every
// read path works with so author fields never need a second lookup.
type PostWithAuthor struct {
	Post
	Author Member
}
