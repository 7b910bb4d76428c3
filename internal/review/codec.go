package review

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// FromPayload wraps the single reference/score pair of p into a
// one-element score list. The wire score is truncated toward zero.
func FromPayload(p Payload) Book {
	var rating *int
	if p.Score != nil {
		r := truncateScore(*p.Score)
		rating = &r
	}

	return Book{
		Title:  p.Title,
		Author: p.Author,
		Year:   p.Year,
		Scores: []Score{{Reference: p.Reference, Rating: rating}},
	}
}

// truncateScore saturates at the 32-bit rating range and maps NaN to 0.
func truncateScore(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// ToPayload reports b with its scores replaced by their average and a note.
// A nil book yields an all-absent payload.
func ToPayload(b *Book) Payload {
	if b == nil {
		return Payload{}
	}

	avg, note := Average(b.Scores)
	return Payload{
		Title:     b.Title,
		Author:    b.Author,
		Year:      b.Year,
		Reference: &note,
		Score:     avg,
	}
}

// PayloadFromQuery reads a payload from query-string parameters.
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
	if q.Has(fieldReference) {
		v := q.Get(fieldReference)
		p.Reference = &v
	}
	if q.Has(fieldScore) {
		f, err := strconv.ParseFloat(q.Get(fieldScore), 64)
		if err != nil {
			return Payload{}, fmt.Errorf("query parameter %s: %w", fieldScore, err)
		}
		p.Score = &f
	}
	return p, nil
}
