package review

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPayload(t *testing.T) {
	b := FromPayload(Payload{
		Title:     strPtr("The Last Man"),
		Author:    strPtr("Mary Shelley"),
		Year:      intPtr(1826),
		Reference: strPtr("The Book Club"),
		Score:     floatPtr(7.9),
	})

	assert.Equal(t, "The Last Man", *b.Title)
	assert.Equal(t, 1826, *b.Year)
	require.Len(t, b.Scores, 1)
	assert.Equal(t, "The Book Club", *b.Scores[0].Reference)
	assert.Equal(t, 7, *b.Scores[0].Rating)
	assert.Nil(t, b.LastModified)
}

func TestFromPayload_Truncates(t *testing.T) {
	assert.Equal(t, -2, *FromPayload(Payload{Score: floatPtr(-2.7)}).Scores[0].Rating)
	assert.Equal(t, 0, *FromPayload(Payload{Score: floatPtr(0.99)}).Scores[0].Rating)
}

func TestFromPayload_SaturatesOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{"huge positive", 1e20, math.MaxInt32},
		{"huge negative", -1e20, math.MinInt32},
		{"just above int32", 3e9, math.MaxInt32},
		{"upper bound", math.MaxInt32, math.MaxInt32},
		{"lower bound", math.MinInt32, math.MinInt32},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *FromPayload(Payload{Score: floatPtr(tt.score)}).Scores[0].Rating)
		})
	}
}

func TestFromPayload_AbsentScore(t *testing.T) {
	b := FromPayload(Payload{Title: strPtr("x")})

	require.Len(t, b.Scores, 1)
	assert.Nil(t, b.Scores[0].Reference)
	assert.Nil(t, b.Scores[0].Rating)
}

func TestToPayload(t *testing.T) {
	now := time.Now()
	b := &Book{
		Title:  strPtr("The Last Man"),
		Author: strPtr("Mary Shelley"),
		Year:   intPtr(1826),
		Scores: []Score{
			{Reference: strPtr("The Book Club"), Rating: intPtr(7)},
			{Reference: strPtr("The Good Read"), Rating: intPtr(6)},
		},
		LastModified: &now,
	}

	p := ToPayload(b)

	assert.Equal(t, "The Last Man", *p.Title)
	assert.Equal(t, NoteAverage, *p.Reference)
	require.NotNil(t, p.Score)
	assert.InDelta(t, 6.5, *p.Score, 1e-9)
}

func TestToPayload_NoScores(t *testing.T) {
	raw, err := json.Marshal(ToPayload(&Book{Title: strPtr("When Worlds Collide"), Scores: []Score{}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"When Worlds Collide","author":null,"year":null,"reference":"No scores recorded","score":null}`, string(raw))
}

func TestToPayload_NotFound(t *testing.T) {
	raw, err := json.Marshal(ToPayload(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":null,"author":null,"year":null,"reference":null,"score":null}`, string(raw))
}

func TestPayloadFromQuery(t *testing.T) {
	q, _ := url.ParseQuery("title=The%20Last%20Man&author=Mary%20Shelley&score=4.5&reference=x")
	p, err := PayloadFromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, "The Last Man", *p.Title)
	assert.Equal(t, "Mary Shelley", *p.Author)
	assert.Equal(t, "x", *p.Reference)
	assert.Equal(t, 4.5, *p.Score)
	assert.Nil(t, p.Year)

	_, err = PayloadFromQuery(url.Values{"score": {"high"}})
	assert.Error(t, err)
	_, err = PayloadFromQuery(url.Values{"year": {"1.5"}})
	assert.Error(t, err)
}
