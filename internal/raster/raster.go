// Package raster draws a scene into an RGBA image.
package raster

import (
	"image"
	imgcolor "image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/alexisbeaulieu97/avatint/internal/color"
	"github.com/alexisbeaulieu97/avatint/internal/scene"
)

// kappa places cubic control points for a quarter-circle arc.
const kappa = 0.5522847498

// Options controls the output image.
type Options struct {
	// Width and Height of the image in pixels. Zero uses the scene's viewBox.
	Width  int
	Height int
	// Background fills the image before shapes are drawn. Nil leaves it transparent.
	Background imgcolor.Color
}

// Rasterize draws every node of sc, scaled from its viewBox to the output size.
func Rasterize(sc *scene.Scene, opts Options) *image.RGBA {
	vw, vh := sc.ViewBox()
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = vw
	}
	if h <= 0 {
		h = vh
	}
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if vw <= 0 || vh <= 0 {
		return dst
	}

	sx := float64(w) / float64(vw)
	sy := float64(h) / float64(vh)
	z := vector.NewRasterizer(w, h)

	for _, n := range sc.Nodes() {
		fill, ok := fillColor(n.Fill)
		if !ok {
			continue
		}
		z.Reset(w, h)
		z.DrawOp = draw.Over
		switch n.Kind {
		case scene.KindCircle:
			ellipse(z, n.Attrs["cx"]*sx, n.Attrs["cy"]*sy, n.Attrs["r"]*sx, n.Attrs["r"]*sy)
		case scene.KindRect:
			roundedRect(z,
				n.Attrs["x"]*sx, n.Attrs["y"]*sy,
				n.Attrs["width"]*sx, n.Attrs["height"]*sy,
				n.Attrs["rx"]*sx, n.Attrs["rx"]*sy)
		default:
			continue
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
	}
	return dst
}

func fillColor(hex string) (imgcolor.NRGBA, bool) {
	if hex == "" {
		return imgcolor.NRGBA{}, false
	}
	rgb, err := color.ParseHex(hex)
	if err != nil {
		return imgcolor.NRGBA{}, false
	}
	return imgcolor.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}, true
}

func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	z.MoveTo(f32(cx+rx), f32(cy))
	z.CubeTo(f32(cx+rx), f32(cy+ky), f32(cx+kx), f32(cy+ry), f32(cx), f32(cy+ry))
	z.CubeTo(f32(cx-kx), f32(cy+ry), f32(cx-rx), f32(cy+ky), f32(cx-rx), f32(cy))
	z.CubeTo(f32(cx-rx), f32(cy-ky), f32(cx-kx), f32(cy-ry), f32(cx), f32(cy-ry))
	z.CubeTo(f32(cx+kx), f32(cy-ry), f32(cx+rx), f32(cy-ky), f32(cx+rx), f32(cy))
	z.ClosePath()
}

func roundedRect(z *vector.Rasterizer, x, y, w, h, rx, ry float64) {
	rx = math.Max(0, math.Min(rx, w/2))
	ry = math.Max(0, math.Min(ry, h/2))
	if rx == 0 || ry == 0 {
		z.MoveTo(f32(x), f32(y))
		z.LineTo(f32(x+w), f32(y))
		z.LineTo(f32(x+w), f32(y+h))
		z.LineTo(f32(x), f32(y+h))
		z.ClosePath()
		return
	}

	kx, ky := rx*kappa, ry*kappa
	right, bottom := x+w, y+h
	z.MoveTo(f32(x+rx), f32(y))
	z.LineTo(f32(right-rx), f32(y))
	z.CubeTo(f32(right-rx+kx), f32(y), f32(right), f32(y+ry-ky), f32(right), f32(y+ry))
	z.LineTo(f32(right), f32(bottom-ry))
	z.CubeTo(f32(right), f32(bottom-ry+ky), f32(right-rx+kx), f32(bottom), f32(right-rx), f32(bottom))
	z.LineTo(f32(x+rx), f32(bottom))
	z.CubeTo(f32(x+rx-kx), f32(bottom), f32(x), f32(bottom-ry+ky), f32(x), f32(bottom-ry))
	z.LineTo(f32(x), f32(y+ry))
	z.CubeTo(f32(x), f32(y+ry-ky), f32(x+rx-kx), f32(y), f32(x+rx), f32(y))
	z.ClosePath()
}

func f32(v float64) float32 {
	return float32(v)
}

// EncodePNG rasterizes sc and writes it as PNG.
func EncodePNG(w io.Writer, sc *scene.Scene, opts Options) error {
	return png.Encode(w, Rasterize(sc, opts))
}
