package ms

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type timeouts struct {
	Idle    Duration `json:"idle" yaml:"idle"`
	Request Duration `json:"request" yaml:"request"`
	Retry   Duration `json:"retry" yaml:"retry"`
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	src := []byte("idle: 2 days\nrequest: 1500\nretry: \"1.5s\"\n")

	var got timeouts
	require.NoError(t, yaml.Unmarshal(src, &got))
	assert.Equal(t, Duration(172_800_000), got.Idle)
	assert.Equal(t, Duration(1500), got.Request)
	assert.Equal(t, Duration(1500), got.Retry)
}

func TestDuration_UnmarshalYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown unit", "idle: 3 fortnights\n", ErrUnknownUnit},
		{"bad format", "idle: soon\n", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got timeouts
			err := yaml.Unmarshal([]byte(tt.src), &got)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	var got timeouts
	assert.Error(t, yaml.Unmarshal([]byte("idle: [1, 2]\n"), &got))
}

func TestDuration_NullIsNoop(t *testing.T) {
	var got timeouts
	require.NoError(t, yaml.Unmarshal([]byte("idle: ~\nrequest:\nretry: 5s\n"), &got))
	assert.Equal(t, timeouts{Retry: 5000}, got)

	d := Duration(42)
	require.NoError(t, d.UnmarshalYAML(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}))
	assert.Equal(t, Duration(42), d)

	require.NoError(t, d.UnmarshalJSON([]byte("null")))
	assert.Equal(t, Duration(42), d)
}

func TestDuration_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(timeouts{Idle: Duration(2 * Day), Request: 1500})
	require.NoError(t, err)
	assert.Equal(t, "idle: 172800000\nrequest: 1500\nretry: 0\n", string(out))
}

func TestDuration_JSON(t *testing.T) {
	var got timeouts
	require.NoError(t, json.Unmarshal([]byte(`{"idle":"2 days","request":1500,"retry":"-1m"}`), &got))
	assert.Equal(t, timeouts{Idle: 172_800_000, Request: 1500, Retry: -60_000}, got)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"idle":172800000,"request":1500,"retry":-60000}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"idle":true}`), &got))
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"idle":"2 eons"}`), &got), ErrUnknownUnit)
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1 hour")))
	assert.Equal(t, Duration(Hour), d)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "3600000", string(text))

	var back Duration
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d, back)
}

func TestDuration_String(t *testing.T) {
	assert.Equal(t, "2 days", Duration(172_800_000).String())
	assert.Equal(t, int64(42), Duration(42).Milliseconds())
}

func TestDuration_Std(t *testing.T) {
	d, err := Duration(1500).Std()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	_, err = Duration(math.MaxInt64).Std()
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Duration(math.MinInt64).Std()
	assert.ErrorIs(t, err, ErrOverflow)

	assert.Equal(t, Duration(1), FromStd(1999*time.Microsecond))
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("2 days")
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, d)

	_, err = ParseDuration("1000 years")
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ParseDuration("nope")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	assert.Equal(t, "2 days", FormatDuration(48*time.Hour))
	assert.Equal(t, "1 minute", FormatDuration(time.Minute))
}
