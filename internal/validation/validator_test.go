package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/apperr"
)

type required struct {
	Title    *string `json:"title" validate:"required"`
	Quantity *int    `json:"quantity,omitempty" validate:"required"`
	Note     *string `json:"note"`
}

func TestRequire(t *testing.T) {
	title := "Dune"
	zero := 0
	empty := ""

	tests := []struct {
		name      string
		input     required
		wantField string
	}{
		{"all present", required{Title: &title, Quantity: &zero}, ""},
		{"zero values count as present", required{Title: &empty, Quantity: &zero}, ""},
		{"missing title", required{Quantity: &zero}, "title"},
		{"missing quantity", required{Title: &title}, "quantity"},
		{"first missing wins", required{}, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}
