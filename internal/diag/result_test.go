package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_Ok(t *testing.T) {
	r := Ok(42)
	require.True(t, r.IsOk())
	require.Nil(t, r.Err())

	v, err := r.Unwrap()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestResult_Fail(t *testing.T) {
	r := Fail[int](New("boom"))
	require.False(t, r.IsOk())
	require.EqualError(t, r.Err(), "boom")
}

func TestError_WrapComposesMessage(t *testing.T) {
	inner := New("inner failure")
	outer := Wrap("outer context", inner)
	require.Equal(t, "outer context: inner failure", outer.Error())
	require.ErrorIs(t, outer, inner)
}

func TestResult_MustPanicsOnFailure(t *testing.T) {
	r := Fail[int](New("boom"))
	require.Panics(t, func() {
		r.Must()
	})
}
