package main

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/avatint/internal/color"
	avaerrors "github.com/alexisbeaulieu97/avatint/pkg/errors"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func fillOf(t *testing.T, svg, id string) string {
	t.Helper()
	re := regexp.MustCompile(`id="` + regexp.QuoteMeta(id) + `"[^>]*fill="(#[0-9a-f]{6})"`)
	m := re.FindStringSubmatch(svg)
	require.NotNil(t, m, "no fill for %s in:\n%s", id, svg)
	return m[1]
}

func TestRenderDefaultSVG(t *testing.T) {
	out, err := executeCommand(t, "render")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 400"`), out)
	require.Contains(t, out, `<g class="person">`)

	body := fillOf(t, out, "body")
	require.Equal(t, body, fillOf(t, out, "arm-0"))
	require.Equal(t, body, fillOf(t, out, "arm-1"))
	require.Equal(t, fillOf(t, out, "leg-0"), fillOf(t, out, "leg-1"))
}

func TestRenderAppliesClampedEdits(t *testing.T) {
	out, err := executeCommand(t, "render", "--set", "head.r=999", "--set", "leg.bright=-10")
	require.NoError(t, err)

	want := color.AdjustBrightness(color.NewRGB(255, 215, 176), 100)
	require.Equal(t, want, fillOf(t, out, "head"))
	require.Equal(t, "#000000", fillOf(t, out, "leg-0"))
	require.Equal(t, "#000000", fillOf(t, out, "leg-1"))
}

func TestRenderWidthScalesViewBox(t *testing.T) {
	out, err := executeCommand(t, "render", "--width", "1000")
	require.NoError(t, err)
	require.Contains(t, out, `viewBox="0 0 1000 600"`)
}

func TestRenderPNGToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.png")
	out, err := executeCommand(t, "render", "--format", "png", "--output", path, "--width", "300")
	require.NoError(t, err)
	require.Empty(t, out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 400, img.Bounds().Dy())
}

func TestRenderRejectsUnknownPart(t *testing.T) {
	_, err := executeCommand(t, "render", "--set", "hat.r=10")
	require.ErrorIs(t, err, avaerrors.ErrUnknownPart)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "render", "--format", "gif")
	var verr *avaerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "format", verr.Field)
}

func TestRenderUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatint.yaml")
	cfg := `parts:
  - key: shoe
    color: "#ff0000"
layout:
  default_width: 800
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	out, err := executeCommand(t, "render", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, `viewBox="0 0 800 480"`)
	require.Equal(t, color.AdjustBrightness(color.NewRGB(255, 0, 0), 100), fillOf(t, out, "shoe-0"))
}

func TestRootWithoutTerminalRenders(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func() bool { return false }

	out, err := executeCommand(t)
	require.NoError(t, err)
	require.Contains(t, out, `<g class="person">`)
}
