// Package inventory implements the book inventory service: titles held,
// their authors, publication year and how many copies are in stock.
package inventory

import "time"

const (
	fieldTitle        = "title"
	fieldAuthor       = "author"
	fieldYear         = "year"
	fieldQuantity     = "quantity"
	fieldExplicit     = "explicit"
	fieldFirstCreated = "first_created"
	fieldLastModified = "last_modified"
)

// Book is the stored inventory record. Every field is optional so a
// partially filled value can also describe a search or a change.
type Book struct {
	Title        *string    `bson:"title,omitempty"`
	Author       *string    `bson:"author,omitempty"`
	Year         *int       `bson:"year,omitempty"`
	Quantity     *int       `bson:"quantity,omitempty"`
	Explicit     *bool      `bson:"explicit,omitempty"`
	FirstCreated *time.Time `bson:"first_created,omitempty"`
	LastModified *time.Time `bson:"last_modified,omitempty"`
}

// Payload is the wire shape of a book for both request bodies and
// query strings. Timestamps never cross the wire.
type Payload struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Year     *int    `json:"year"`
	Quantity *int    `json:"quantity"`
	Explicit *bool   `json:"explicit"`
}
