package tin

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"format", ErrInvalidFormat, "invalid_format"},
		{"length", ErrInvalidLength, "invalid_length"},
		{"component", ErrInvalidComponent, "invalid_component"},
		{"checksum", ErrInvalidChecksum, "invalid_checksum"},
		{"wrapped format", fmt.Errorf("%w: unexpected character 'x'", ErrInvalidFormat), "invalid_format"},
		{"unknown", errors.New("boom"), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestResultConstructors(t *testing.T) {
	t.Run("invalid carries the error and nothing else", func(t *testing.T) {
		res := Invalid(ErrInvalidLength)
		assert.False(t, res.Valid)
		assert.ErrorIs(t, res.Err, ErrInvalidLength)
		assert.Empty(t, res.Compact)
		assert.False(t, res.Individual)
		assert.False(t, res.Company)
	})

	t.Run("classification is exclusive", func(t *testing.T) {
		ind := ValidIndividual("1234503")
		assert.True(t, ind.Valid)
		assert.True(t, ind.Individual)
		assert.False(t, ind.Company)
		assert.NoError(t, ind.Err)

		co := ValidCompany("U132950X")
		assert.True(t, co.Valid)
		assert.True(t, co.Company)
		assert.False(t, co.Individual)
		assert.NoError(t, co.Err)
	})
}
