package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string { return &s }

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		search Search
		want   bson.D
	}{
		{
			name:   "title and author",
			search: Search{Title: strPtr("Dune"), Author: strPtr("Herbert")},
			want:   bson.D{{Key: "title", Value: "Dune"}, {Key: "author", Value: "Herbert"}},
		},
		{
			name:   "title only",
			search: Search{Title: strPtr("Dune")},
			want:   bson.D{{Key: "title", Value: "Dune"}},
		},
		{
			name:   "author only",
			search: Search{Author: strPtr("Herbert")},
			want:   bson.D{{Key: "author", Value: "Herbert"}},
		},
		{
			name:   "match all",
			search: Search{},
			want:   bson.D{},
		},
		{
			name:   "empty strings still filter",
			search: Search{Title: strPtr(""), Author: strPtr("")},
			want:   bson.D{{Key: "title", Value: ""}, {Key: "author", Value: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.search))
		})
	}
}

func TestProjection(t *testing.T) {
	got := Projection("title", "year")
	assert.Equal(t, bson.D{{Key: "title", Value: 1}, {Key: "year", Value: 1}}, got)
}
