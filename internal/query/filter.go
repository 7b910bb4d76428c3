// Package query builds MongoDB filter documents from optional search fields.
package query

import "go.mongodb.org/mongo-driver/bson"

const (
	FieldTitle  = "title"
	FieldAuthor = "author"
)

// Search holds the optional fields a read may filter on. Any other field of
// a request is ignored for search purposes.
type Search struct {
	Title  *string
	Author *string
}

// Build returns the filter for s, picking the most selective tier available:
// title and author, title only, author only, or match-all.
func Build(s Search) bson.D {
	switch {
	case s.Title != nil && s.Author != nil:
		return Identity(*s.Title, *s.Author)
	case s.Title != nil:
		return bson.D{{Key: FieldTitle, Value: *s.Title}}
	case s.Author != nil:
		return bson.D{{Key: FieldAuthor, Value: *s.Author}}
	default:
		return bson.D{}
	}
}

// Identity matches the single logical record keyed by (title, author).
func Identity(title, author string) bson.D {
	return bson.D{
		{Key: FieldTitle, Value: title},
		{Key: FieldAuthor, Value: author},
	}
}

// Projection includes each named field.
func Projection(fields ...string) bson.D {
	p := make(bson.D, 0, len(fields))
	for _, f := range fields {
		p = append(p, bson.E{Key: f, Value: 1})
	}
	return p
}
