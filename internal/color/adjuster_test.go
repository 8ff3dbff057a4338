package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeBlend, mode)

	mode, err = ParseMode(" Scale ")
	require.NoError(t, err)
	require.Equal(t, ModeScale, mode)

	_, err = ParseMode("gamma")
	require.Error(t, err)
}

func TestAdjusterMemoizes(t *testing.T) {
	t.Parallel()

	a := NewAdjuster(ModeBlend, 4)
	c := RGB{R: 16, G: 185, B: 129}

	first := a.Color(c, 50)
	require.Equal(t, AdjustBrightness(c, 50), first)
	require.Equal(t, 1, a.Cached())

	require.Equal(t, first, a.Color(c, 50))
	require.Equal(t, 1, a.Cached())

	for p := 0; p < 10; p++ {
		a.Color(c, p)
	}
	require.Equal(t, 4, a.Cached())
}

func TestAdjusterClampsPercent(t *testing.T) {
	t.Parallel()

	a := NewAdjuster(ModeBlend, 0)
	c := RGB{R: 55, G: 65, B: 81}
	require.Equal(t, "#000000", a.Color(c, -10))
	require.Equal(t, "#ffffff", a.Color(c, 500))
	require.Zero(t, a.Cached())
}

func TestAdjusterScaleMode(t *testing.T) {
	t.Parallel()

	a := NewAdjuster(ModeScale, DefaultCacheSize)
	c := RGB{R: 55, G: 65, B: 81}
	require.Equal(t, ModeScale, a.Mode())
	require.Equal(t, ScaleBrightness(c, 180), a.Color(c, 180))
}
