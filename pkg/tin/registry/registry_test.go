package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tincheck/pkg/tin"
	"tincheck/pkg/tin/za"
)

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register("ZA", za.New()))

		v, ok := r.Get("za")
		require.True(t, ok)
		assert.NotNil(t, v)

		_, ok = r.Get("xx")
		assert.False(t, ok)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register("za", za.New()))
		assert.Error(t, r.Register("za", za.New()))
	})

	t.Run("empty code fails", func(t *testing.T) {
		r := New()
		assert.Error(t, r.Register("  ", za.New()))
	})

	t.Run("codes are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"ad", "es", "za"}, Default().Codes())
	})
}

// TestContract exercises the cross-jurisdiction properties every validator
// must honor, using known-valid values per jurisdiction.
func TestContract(t *testing.T) {
	valid := map[string][]string{
		"ad": {"U-132950-X", "F-123456-Z"},
		"es": {"12345678-Z", "X1234567L", "A58818501"},
		"za": {"0123 456 7897", "9876 543 2103", "1234503", "0000 123 4503"},
	}

	r := Default()
	for code, inputs := range valid {
		v, ok := r.Get(code)
		require.True(t, ok, "jurisdiction %s must be registered", code)

		for _, input := range inputs {
			t.Run(code+"/"+input, func(t *testing.T) {
				res := v.Validate(input)
				require.True(t, res.Valid, "validate %q", input)
				require.NoError(t, res.Err)

				t.Run("classification exclusivity", func(t *testing.T) {
					assert.NotEqual(t, res.Individual, res.Company)
				})

				t.Run("compact is idempotent", func(t *testing.T) {
					once, err := v.Compact(input)
					require.NoError(t, err)
					twice, err := v.Compact(once)
					require.NoError(t, err)
					assert.Equal(t, once, twice)
				})

				t.Run("format round trips through compact", func(t *testing.T) {
					formatted, err := v.Format(res.Compact)
					require.NoError(t, err)
					back, err := v.Compact(formatted)
					require.NoError(t, err)
					assert.Equal(t, res.Compact, back)
				})

				t.Run("validating the compact form is stable", func(t *testing.T) {
					again := v.Validate(res.Compact)
					require.True(t, again.Valid)
					assert.Equal(t, res.Compact, again.Compact)
					assert.Equal(t, res.Individual, again.Individual)
					assert.Equal(t, res.Company, again.Company)
				})
			})
		}
	}
}

// TestInvalidNeverPanics feeds hostile input to every validator; malformed
// input must surface inside the Result, never as a panic.
func TestInvalidNeverPanics(t *testing.T) {
	hostile := []string{
		"",
		"   ",
		"'; DROP TABLE taxpayers;--",
		"../../../etc/passwd",
		"\x00\x00\x00",
		"ünïcödé",
		"12345678901234567890123456789012345678901234567890",
	}

	r := Default()
	for _, code := range r.Codes() {
		v, _ := r.Get(code)
		for _, input := range hostile {
			res := v.Validate(input)
			assert.False(t, res.Valid, "%s must reject %q", code, input)
			assert.Error(t, res.Err)
			assert.NotEmpty(t, tin.Kind(res.Err))
		}
	}
}
