package res

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk_State(t *testing.T) {
	t.Parallel()

	r := Ok[int, string](42)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Value())
	assert.Empty(t, r.Err())
}

func TestErr_State(t *testing.T) {
	t.Parallel()

	r := Err[int, string]("boom")

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	assert.Equal(t, "boom", r.Err())
	assert.Zero(t, r.Value())
}

func TestConstruction_Metadata(t *testing.T) {
	t.Parallel()

	a := Ok[int, string](1)
	b := Ok[int, string](1)

	require.NotEqual(t, uuid.Nil, a.Id())
	assert.NotEqual(t, a.Id(), b.Id())
	assert.False(t, a.CreatedAt().IsZero())
}

func TestMatch_Ok(t *testing.T) {
	t.Parallel()

	var got float64
	errCalled := false

	Ok[float64, string](2.5).Match(
		func(v float64) { got = v },
		func(string) { errCalled = true },
	)

	assert.Equal(t, 2.5, got)
	assert.False(t, errCalled)
}

func TestMatch_Err(t *testing.T) {
	t.Parallel()

	okCalled := false
	var got string

	Err[float64, string]("division by zero").Match(
		func(float64) { okCalled = true },
		func(e string) { got = e },
	)

	assert.False(t, okCalled)
	assert.Equal(t, "division by zero", got)
}

func TestMatch_NilCallbacks(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Ok[int, string](1).Match(nil, nil)
		Err[int, string]("e").Match(nil, nil)
	})
}

func TestMatchConsume(t *testing.T) {
	t.Parallel()

	var got []int
	Ok[[]int, string]([]int{1, 2, 3}).MatchConsume(
		func(v []int) { got = v },
		nil,
	)

	assert.Equal(t, []int{1, 2, 3}, got)
}
