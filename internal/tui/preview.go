package tui

import (
	imgcolor "image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/avatint/internal/color"
	"github.com/alexisbeaulieu97/avatint/internal/raster"
)

// reservedRows keeps the title, status and help lines visible.
const reservedRows = 6

// renderPreview draws the scene with half-block cells: each terminal cell
// shows two vertically stacked pixels.
func (m Model) renderPreview() string {
	cols := m.width - panelWidth - 2
	rows := m.height - reservedRows
	if cols <= 0 || rows <= 0 {
		return ""
	}

	vw, vh := m.view.Scene().ViewBox()
	if vw <= 0 || vh <= 0 {
		return ""
	}
	// fit the viewBox into cols x 2*rows square pixels
	pxH := rows * 2
	pxW := pxH * vw / vh
	if pxW > cols {
		pxW = cols
		pxH = pxW * vh / vw
	}
	pxH -= pxH % 2
	if pxW <= 0 || pxH <= 0 {
		return ""
	}

	img := raster.Rasterize(m.view.Scene(), raster.Options{Width: pxW, Height: pxH})
	var b strings.Builder
	for y := 0; y < pxH; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < pxW; x++ {
			b.WriteString(cell(img.RGBAAt(x, y), img.RGBAAt(x, y+1)))
		}
	}
	return b.String()
}

func cell(top, bottom imgcolor.RGBA) string {
	switch {
	case top.A == 0 && bottom.A == 0:
		return " "
	case bottom.A == 0:
		return lipgloss.NewStyle().Foreground(hexOf(top)).Render("▀")
	case top.A == 0:
		return lipgloss.NewStyle().Foreground(hexOf(bottom)).Render("▄")
	default:
		return lipgloss.NewStyle().Foreground(hexOf(top)).Background(hexOf(bottom)).Render("▀")
	}
}

// hexOf un-premultiplies c so antialiased edges keep their hue.
func hexOf(c imgcolor.RGBA) lipgloss.Color {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return lipgloss.Color(color.RGB{R: n.R, G: n.G, B: n.B}.Hex())
}
