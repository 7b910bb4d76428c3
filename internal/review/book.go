// Package review implements the book review service: reviewer scores kept
// under each book and reported back as an average rating.
package review

import "time"

const (
	fieldTitle        = "title"
	fieldAuthor       = "author"
	fieldYear         = "year"
	fieldScores       = "scores"
	fieldReference    = "reference"
	fieldRating       = "rating"
	fieldScore        = "score"
	fieldLastModified = "last_modified"
)

// Score is one reviewer's rating of a book. Reference identifies the
// reviewer; a book holds at most one score per reference.
type Score struct {
	Reference *string `bson:"reference,omitempty"`
	Rating    *int    `bson:"rating,omitempty"`
}

// Book is the stored review record for one (title, author).
type Book struct {
	Title        *string    `bson:"title,omitempty"`
	Author       *string    `bson:"author,omitempty"`
	Year         *int       `bson:"year,omitempty"`
	Scores       []Score    `bson:"scores,omitempty"`
	LastModified *time.Time `bson:"last_modified,omitempty"`
}

// Payload is the wire shape. Requests carry one reviewer reference and
// score; responses reuse the same fields for the aggregate note and the
// average.
type Payload struct {
	Title     *string  `json:"title"`
	Author    *string  `json:"author"`
	Year      *int     `json:"year"`
	Reference *string  `json:"reference"`
	Score     *float64 `json:"score"`
}
