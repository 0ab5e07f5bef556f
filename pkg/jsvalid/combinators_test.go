package jsvalid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesdiacono/JSValid/pkg/jsvalid"
)

func TestAllOf(t *testing.T) {
	t.Parallel()
	t.Run("zero validators always pass", func(t *testing.T) {
		assert.Empty(t, jsvalid.AllOf(nil, false)("anything"))
		assert.Empty(t, jsvalid.AllOf([]any{}, true)(nil))
	})

	t.Run("short-circuit returns the first failure only", func(t *testing.T) {
		found := jsvalid.AllOf([]any{jsvalid.TypeOf("string"), jsvalid.FiniteNumber()}, false)(1.5)
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeNotTypeA, found[0].Code)
	})

	t.Run("short-circuit runs later validators when earlier ones pass", func(t *testing.T) {
		found := jsvalid.AllOf([]any{jsvalid.TypeOf("number"), jsvalid.Bounds(0, 1)}, false)(2.0)
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeOutOfBounds, found[0].Code)
	})

	t.Run("exhaustive concatenates every failure in order", func(t *testing.T) {
		found := jsvalid.AllOf([]any{jsvalid.TypeOf("string"), jsvalid.FiniteNumber()}, true)(true)
		assert.Equal(t, []jsvalid.Code{jsvalid.CodeNotTypeA, jsvalid.CodeNotFinite}, found.Codes())
	})

	t.Run("euphemizes literal members", func(t *testing.T) {
		assert.Empty(t, jsvalid.AllOf([]any{"on"}, false)("on"))
		assert.NotEmpty(t, jsvalid.AllOf([]any{"on"}, false)("off"))
	})
}

func TestWunOf(t *testing.T) {
	t.Parallel()
	t.Run("passes when any alternative passes", func(t *testing.T) {
		either := jsvalid.WunOf(jsvalid.String(), jsvalid.Number())
		assert.Empty(t, either("hi"))
		assert.Empty(t, either(1.5))
	})

	t.Run("euphemizes literal alternatives", func(t *testing.T) {
		color := jsvalid.WunOf("red", "green")
		assert.Empty(t, color("red"))
		assert.NotEmpty(t, color("blue"))
	})

	t.Run("total failure reports not_wun_of then every attempt", func(t *testing.T) {
		found := jsvalid.WunOf(jsvalid.String(), jsvalid.Number())(true)
		assert.Equal(t, []jsvalid.Code{
			jsvalid.CodeNotWunOf,
			jsvalid.CodeNotTypeA,
			jsvalid.CodeNotFinite,
		}, found.Codes())
	})

	t.Run("zero alternatives always fail", func(t *testing.T) {
		found := jsvalid.WunOf()(nil)
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeNotWunOf, found[0].Code)
	})
}

func TestWunOfByKey(t *testing.T) {
	t.Parallel()
	shapes := map[string]any{
		"circle": jsvalid.Object(map[string]any{"kind": "circle", "radius": jsvalid.Number(0)}),
		"square": jsvalid.Object(map[string]any{"kind": "square", "side": jsvalid.Number(0)}),
	}
	kindOf := func(subject any) any {
		return subject.(map[string]any)["kind"]
	}
	shape := jsvalid.WunOfByKey(shapes, kindOf)

	t.Run("delegates to the classified validator", func(t *testing.T) {
		assert.Empty(t, shape(map[string]any{"kind": "circle", "radius": 2.0}))

		found := shape(map[string]any{"kind": "square", "side": -1.0})
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeOutOfBounds, found[0].Code)
		assert.Equal(t, []any{"side"}, found[0].Path)
	})

	t.Run("unknown key reports unexpected_classification_a", func(t *testing.T) {
		found := shape(map[string]any{"kind": "triangle"})
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeUnexpectedClassificationA, found[0].Code)
		assert.Equal(t, "triangle", found[0].Exhibit(0))
	})

	t.Run("panicking classifier is swallowed", func(t *testing.T) {
		found := shape("not even an object")
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeUnexpectedClassificationA, found[0].Code)
		assert.Nil(t, found[0].Exhibit(0))
	})

	t.Run("non-string non-number key is unusable", func(t *testing.T) {
		v := jsvalid.WunOfByKey(map[string]any{"true": jsvalid.Any()}, func(any) any { return true })
		found := v(nil)
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeUnexpectedClassificationA, found[0].Code)
		assert.Equal(t, true, found[0].Exhibit(0))
	})

	t.Run("finite numeric key uses its decimal string form", func(t *testing.T) {
		v := jsvalid.WunOfByKey(map[string]any{"1": jsvalid.Any()}, func(any) any { return 1.0 })
		assert.Empty(t, v("whatever"))
	})
}

func TestNot(t *testing.T) {
	t.Parallel()
	notString := jsvalid.Not(jsvalid.String())

	t.Run("passes when the wrapped validator fails", func(t *testing.T) {
		assert.Empty(t, notString(42))
	})

	t.Run("reports a single unexpected violation on wrapped success", func(t *testing.T) {
		found := notString("text")
		require.Len(t, found, 1)
		assert.Equal(t, jsvalid.CodeUnexpected, found[0].Code)
		assert.Empty(t, found[0].Exhibits)
	})

	t.Run("euphemizes a literal argument", func(t *testing.T) {
		assert.Empty(t, jsvalid.Not("off")("on"))
		assert.NotEmpty(t, jsvalid.Not("off")("off"))
	})
}

func TestAny(t *testing.T) {
	t.Parallel()
	anything := jsvalid.Any()

	assert.Empty(t, anything(nil))
	assert.Empty(t, anything("x"))
	assert.Empty(t, anything(map[string]any{"k": []any{1, 2}}))
}

func TestDeterminism(t *testing.T) {
	t.Parallel()
	v := jsvalid.Object(
		map[string]any{"id": jsvalid.UUID(), "n": jsvalid.Integer()},
		map[string]any{"note": jsvalid.String()},
	)
	subject := map[string]any{"n": "x", "note": 1, "stray1": nil, "stray2": nil}

	first := v(subject)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, v(subject))
	}
}
