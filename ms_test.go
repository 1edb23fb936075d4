package ms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMS_String(t *testing.T) {
	out, err := MS("2 days")
	require.NoError(t, err)
	assert.Equal(t, KindMilliseconds, out.Kind())

	v, ok := out.Milliseconds()
	assert.True(t, ok)
	assert.Equal(t, int64(172_800_000), v)

	_, ok = out.Text()
	assert.False(t, ok)
}

func TestMS_Integer(t *testing.T) {
	out, err := MS(60_000)
	require.NoError(t, err)
	assert.Equal(t, KindString, out.Kind())

	s, ok := out.Text()
	assert.True(t, ok)
	assert.Equal(t, "1 minute", s)

	assert.Equal(t, "2 days", MustString(MS(int64(172_800_000))))
	assert.Equal(t, "999 ms", MustString(MS(int32(999))))
}

func TestMS_Invalid(t *testing.T) {
	for _, in := range []string{"unknown", "10 unknown_units", "--2 days"} {
		_, err := MS(in)
		assert.Error(t, err, in)
	}

	_, err := MS("10 unknown_units")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	_, err = MS("--2 days")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMustHelpers(t *testing.T) {
	assert.Equal(t, "1 minute", MustString(MS(60_000)))
	assert.Equal(t, int64(172_800_000), MustMilliseconds(MS("2 days")))
	assert.Equal(t, int64(60_000), MustMilliseconds(MS("1 minute")))
	assert.Equal(t, int64(-172_800_000), MustMilliseconds(MS("-2 days")))

	assert.Equal(t, "1 minute", Text("1 minute").MustString())
	assert.Equal(t, int64(5), Milliseconds(5).MustMilliseconds())
}

func TestMustHelpers_Panic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"string on milliseconds", func() { MustString(MS("2 days")) }},
		{"milliseconds on string", func() { MustMilliseconds(MS(60_000)) }},
		{"string on error", func() { MustString(MS("unknown")) }},
		{"milliseconds on error", func() { MustMilliseconds(MS("--2 days")) }},
		{"method on zero output", func() { Output{}.MustString() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				_, ok := r.(*PanicError)
				assert.True(t, ok, "panic value %T", r)
			}()
			tt.fn()
		})
	}
}

func TestPanicError_Message(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, "ms: expected string output, got milliseconds", r.(*PanicError).Error())
	}()
	Milliseconds(1).MustString()
}

func TestOutput_String(t *testing.T) {
	assert.Equal(t, "172800000", Milliseconds(172_800_000).String())
	assert.Equal(t, "2 days", Text("2 days").String())
	assert.Equal(t, "", Output{}.String())
	assert.Equal(t, "Kind(0)", Output{}.Kind().String())
}
