package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value float64
		want  int
	}{
		{name: "in range", value: 120, want: 120},
		{name: "lower bound", value: 0, want: 0},
		{name: "upper bound", value: 255, want: 255},
		{name: "below", value: -10, want: 0},
		{name: "above", value: 999, want: 255},
		{name: "fraction rounds", value: 12.6, want: 13},
		{name: "nan", value: math.NaN(), want: 0},
		{name: "positive infinity", value: math.Inf(1), want: 0},
		{name: "negative infinity", value: math.Inf(-1), want: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Clamp(tc.value, ChannelMin, ChannelMax))
		})
	}
}

func TestClampInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw      string
		min, max int
		want     int
	}{
		{raw: "300", min: 0, max: 255, want: 255},
		{raw: " 42 ", min: 0, max: 255, want: 42},
		{raw: "-10", min: 0, max: 200, want: 0},
		{raw: "150", min: 0, max: 200, want: 150},
		{raw: "", min: 0, max: 255, want: 0},
		{raw: "abc", min: 10, max: 20, want: 10},
		{raw: "NaN", min: 5, max: 9, want: 5},
		{raw: "Inf", min: 5, max: 9, want: 5},
		{raw: "1e400", min: 5, max: 9, want: 5},
		{raw: "7.4", min: 0, max: 9, want: 7},
	}

	for _, tc := range cases {
		got := ClampInput(tc.raw, tc.min, tc.max)
		require.Equalf(t, tc.want, got, "ClampInput(%q, %d, %d)", tc.raw, tc.min, tc.max)
		require.GreaterOrEqual(t, got, tc.min)
		require.LessOrEqual(t, got, tc.max)
	}
}

func TestClampAlwaysWithinBounds(t *testing.T) {
	t.Parallel()

	for v := -1000.0; v <= 1000; v += 7.3 {
		got := Clamp(v, BrightnessMin, BrightnessMax)
		require.GreaterOrEqual(t, got, BrightnessMin)
		require.LessOrEqual(t, got, BrightnessMax)
	}
}
