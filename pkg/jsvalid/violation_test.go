package jsvalid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesdiacono/JSValid/pkg/jsvalid"
)

func TestNewViolation(t *testing.T) {
	t.Parallel()
	t.Run("keeps exhibits in call order", func(t *testing.T) {
		v := jsvalid.NewViolation(jsvalid.CodeNotTypeA, "string", 42)
		assert.Equal(t, jsvalid.CodeNotTypeA, v.Code)
		assert.Equal(t, []any{"string", 42}, v.Exhibits)
		assert.Nil(t, v.Path)
	})

	t.Run("allows zero exhibits", func(t *testing.T) {
		v := jsvalid.NewViolation(jsvalid.CodeNotFinite)
		assert.Empty(t, v.Exhibits)
	})
}

func TestViolation_Exhibit(t *testing.T) {
	t.Parallel()
	v := jsvalid.NewViolation(jsvalid.CodeNotEqualToA, "expected")

	assert.Equal(t, "expected", v.Exhibit(0))
	assert.Nil(t, v.Exhibit(1))
	assert.Nil(t, v.Exhibit(-1))
}

func TestViolation_PathString(t *testing.T) {
	t.Parallel()
	t.Run("empty path", func(t *testing.T) {
		assert.Equal(t, "", jsvalid.NewViolation(jsvalid.CodeUnexpected).PathString())
	})

	t.Run("mixed keys", func(t *testing.T) {
		v := jsvalid.Violation{Code: jsvalid.CodeNotFinite, Path: []any{"items", 2, "price"}}
		assert.Equal(t, "items.2.price", v.PathString())
	})
}

func TestViolations_Error(t *testing.T) {
	t.Parallel()
	t.Run("returns default message when empty", func(t *testing.T) {
		var vs jsvalid.Violations
		assert.Equal(t, "validation failed", vs.Error())
	})

	t.Run("includes code and path", func(t *testing.T) {
		vs := jsvalid.Violations{
			jsvalid.NewViolation(jsvalid.CodeNotFinite),
			{Code: jsvalid.CodeNotTypeA, Exhibits: []any{"string"}, Path: []any{"name"}},
		}
		assert.Equal(t, "validation failed: not_finite; name: not_type_a", vs.Error())
	})
}

func TestViolations_At(t *testing.T) {
	t.Parallel()
	vs := jsvalid.Violations{
		{Code: jsvalid.CodeNotFinite, Path: []any{"age"}},
		{Code: jsvalid.CodeNotTypeA, Path: []any{"pets", 1}},
		{Code: jsvalid.CodeUnexpected},
	}

	t.Run("matches exact paths only", func(t *testing.T) {
		found := vs.At("pets", 1)
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeNotTypeA, found[0].Code)

		assert.Empty(t, vs.At("pets"))
		assert.Empty(t, vs.At("pets", 2))
	})

	t.Run("empty path matches root violations", func(t *testing.T) {
		found := vs.At()
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeUnexpected, found[0].Code)
	})
}

func TestViolations_Helpers(t *testing.T) {
	t.Parallel()
	vs := jsvalid.Violations{
		jsvalid.NewViolation(jsvalid.CodeNotFinite),
		jsvalid.NewViolation(jsvalid.CodeUnexpected),
	}

	assert.False(t, vs.Empty())
	assert.True(t, jsvalid.Violations{}.Empty())
	assert.Equal(t, []jsvalid.Code{jsvalid.CodeNotFinite, jsvalid.CodeUnexpected}, vs.Codes())
}
