package res

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each test uses its own payload types so that its hook instantiation is
// independent of every other parallel test.

type hookCapture struct {
	messages   []string
	terminated int
}

func installHooks[T, E any](t *testing.T) *hookCapture {
	t.Helper()

	c := &hookCapture{}
	SetLogHook[T, E](func(message string) { c.messages = append(c.messages, message) })
	SetTerminateHook[T, E](func() { c.terminated++ })
	t.Cleanup(ClearHooks[T, E])
	return c
}

func TestUnwrap_Ok(t *testing.T) {
	t.Parallel()

	type val float64
	c := installHooks[val, string](t)

	got := Ok[val, string](5).Unwrap("ctx")

	assert.Equal(t, val(5), got)
	assert.Empty(t, c.messages)
	assert.Zero(t, c.terminated)
}

func TestUnwrap_ErrIsFatal(t *testing.T) {
	t.Parallel()

	type val float64
	c := installHooks[val, string](t)

	got := Err[val, string]("division by zero").Unwrap("")

	assert.Zero(t, got)
	require.Len(t, c.messages, 1)
	assert.Equal(t, "FATAL: Attempted to unwrap an Err value - division by zero", c.messages[0])
	assert.Equal(t, 1, c.terminated)
}

func TestUnwrap_ContextPrefix(t *testing.T) {
	t.Parallel()

	type val int
	c := installHooks[val, string](t)

	Err[val, string]("division by zero").Unwrap("safe division")

	require.Len(t, c.messages, 1)
	assert.Equal(t, "FATAL: Attempted to unwrap an Err value - safe division: division by zero", c.messages[0])
}

func TestExpect_ErrIsFatal(t *testing.T) {
	t.Parallel()

	type val float64
	c := installHooks[val, string](t)

	got := Err[val, string]("division by zero").Expect("division should work")

	assert.Zero(t, got)
	require.Len(t, c.messages, 1)
	assert.Equal(t, "FATAL: Expectation failed: division should work. division by zero", c.messages[0])
	assert.Equal(t, 1, c.terminated)
}

func TestUnwrapErr_Err(t *testing.T) {
	t.Parallel()

	type val int
	c := installHooks[val, string](t)

	got := Err[val, string]("boom").UnwrapErr("")

	assert.Equal(t, "boom", got)
	assert.Empty(t, c.messages)
	assert.Zero(t, c.terminated)
}

func TestUnwrapErr_OkIsFatal(t *testing.T) {
	t.Parallel()

	type val int
	c := installHooks[val, string](t)

	got := Ok[val, string](1).UnwrapErr("")

	assert.Empty(t, got)
	require.Len(t, c.messages, 1)
	assert.Equal(t, "FATAL: Attempted to unwrapErr an Ok value - Attempted to unwrapErr an Ok value", c.messages[0])
	assert.Equal(t, 1, c.terminated)
}

func TestUnwrapOr_NeverConsultsHooks(t *testing.T) {
	t.Parallel()

	type val float64
	c := installHooks[val, string](t)

	assert.Equal(t, val(0), Err[val, string]("division by zero").UnwrapOr(0))
	assert.Equal(t, val(3), Ok[val, string](3).UnwrapOr(0))

	assert.Empty(t, c.messages)
	assert.Zero(t, c.terminated)
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()

	type val int
	c := installHooks[val, string](t)

	calls := 0
	fallback := func() val {
		calls++
		return -1
	}

	assert.Equal(t, val(7), Ok[val, string](7).UnwrapOrElse(fallback))
	assert.Zero(t, calls)

	assert.Equal(t, val(-1), Err[val, string]("x").UnwrapOrElse(fallback))
	assert.Equal(t, 1, calls)

	assert.Empty(t, c.messages)
	assert.Zero(t, c.terminated)
}

func TestUnwrapOrLog_Recoverable(t *testing.T) {
	t.Parallel()

	type val float64
	c := installHooks[val, string](t)

	got := Err[val, string]("division by zero").UnwrapOrLog("safe division", 0)

	assert.Equal(t, val(0), got)
	require.Len(t, c.messages, 1)
	assert.Equal(t, "RECOVERABLE: safe division: division by zero", c.messages[0])
	assert.Zero(t, c.terminated)
}

func TestUnwrapChecked(t *testing.T) {
	t.Parallel()

	type val float64
	c := installHooks[val, string](t)

	assert.Equal(t, val(2), Ok[val, string](2).UnwrapChecked())
	assert.Empty(t, c.messages)

	got := Err[val, string]("division by zero").UnwrapChecked()
	assert.Zero(t, got)
	require.Len(t, c.messages, 1)
	assert.Equal(t, "Warning: Attempted to unwrapChecked an Err value", c.messages[0])
	assert.Zero(t, c.terminated)
}

func TestErrorText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", errorText("plain"))
	assert.Equal(t, "wrapped", errorText(errors.New("wrapped")))
	assert.Equal(t, "404", errorText(404))
	assert.Equal(t, "nil error", errorText(nil))

	var p *int
	assert.Equal(t, "nil error", errorText(p))
}

type coded struct{ code int }

func (c coded) String() string { return "code " + string(rune('0'+c.code)) }

func TestErrorText_Stringer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "code 7", errorText(coded{code: 7}))
}

func TestDefaultLog_WritesToStderr(t *testing.T) {
	type val struct{ def int }

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	Err[val, string]("division by zero").UnwrapOrLog("", val{})

	os.Stderr = orig
	require.NoError(t, w.Close())

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "RECOVERABLE: division by zero\n", string(data))
}
