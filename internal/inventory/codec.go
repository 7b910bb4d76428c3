package inventory

import (
	"fmt"
	"net/url"
	"strconv"
)

// FromPayload copies the wire fields into a record. Timestamps stay nil
// until the repository stamps them.
func FromPayload(p Payload) Book {
	return Book{
		Title:    p.Title,
		Author:   p.Author,
		Year:     p.Year,
		Quantity: p.Quantity,
		Explicit: p.Explicit,
	}
}

// ToPayload drops the server-only fields of b.
func ToPayload(b Book) Payload {
	return Payload{
		Title:    b.Title,
		Author:   b.Author,
		Year:     b.Year,
		Quantity: b.Quantity,
		Explicit: b.Explicit,
	}
}

// ToPayloads never returns nil so an empty result encodes as [].
func ToPayloads(books []Book) []Payload {
	out := make([]Payload, 0, len(books))
	for _, b := range books {
		out = append(out, ToPayload(b))
	}
	return out
}

// PayloadFromQuery reads a payload from query-string parameters. Absent
// parameters stay nil; present ones must parse.
func PayloadFromQuery(q url.Values) (Payload, error) {
	var p Payload
	if q.Has(fieldTitle) {
		v := q.Get(fieldTitle)
		p.Title = &v
	}
	if q.Has(fieldAuthor) {
		v := q.Get(fieldAuthor)
		p.Author = &v
	}
	if q.Has(fieldYear) {
		n, err := strconv.Atoi(q.Get(fieldYear))
		if err != nil {
			return Payload{}, fmt.Errorf("query parameter %s: %w", fieldYear, err)
		}
		p.Year = &n
	}
	if q.Has(fieldQuantity) {
		n, err := strconv.Atoi(q.Get(fieldQuantity))
		if err != nil {
			return Payload{}, fmt.Errorf("query parameter %s: %w", fieldQuantity, err)
		}
		p.Quantity = &n
	}
	if q.Has(fieldExplicit) {
		b, err := strconv.ParseBool(q.Get(fieldExplicit))
		if err != nil {
			return Payload{}, fmt.Errorf("query parameter %s: %w", fieldExplicit, err)
		}
		p.Explicit = &b
	}
	return p, nil
}
