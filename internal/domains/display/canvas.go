package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 400
	Height = 300
)

const (
	paperIndex uint8 = 0
	inkIndex   uint8 = 1
)

var (
	paper = color.Gray{Y: 0xff}
	ink   = color.Gray{Y: 0x00}

	// 1-bit panel palette, index 0 is the blank paper.
	palette = color.Palette{paper, ink}

	face = basicfont.Face7x13
)

// canvas is a 1-bit frame of the panel size.
type canvas struct {
	img *image.Paletted
}

func newCanvas() *canvas {
	return &canvas{
		img: image.NewPaletted(image.Rect(0, 0, Width, Height), palette),
	}
}

func (c *canvas) set(x, y int) {
	c.img.SetColorIndex(x, y, inkIndex)
}

// rect draws an outline of given width inside (x0, y0)-(x1, y1).
func (c *canvas) rect(x0, y0, x1, y1, width int) {
	for i := 0; i < width; i++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y0+i)
			c.set(x, y1-i)
		}
		for y := y0; y <= y1; y++ {
			c.set(x0+i, y)
			c.set(x1-i, y)
		}
	}
}

// invert swaps ink and paper (dark mode).
func (c *canvas) invert() {
	for i := range c.img.Pix {
		c.img.Pix[i] ^= inkIndex
	}
}

// text draws s with its top left corner at (x, y). Scale multiplies the base glyph size.
func (c *canvas) text(x, y int, s string, scale int) {
	c.stretchedText(x, y, s, textWidth(s, scale), textHeight(scale))
}

// boldText emulates a bold face by overprinting with one pixel shift.
func (c *canvas) boldText(x, y int, s string, scale int) {
	c.text(x, y, s, scale)
	c.text(x+1, y, s, scale)
}

func (c *canvas) stretchedText(x, y int, s string, w, h int) {
	if s == "" || w <= 0 || h <= 0 {
		return
	}

	mask := textMask(s)
	if mask.Bounds().Empty() {
		return
	}

	scaled := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
	xdraw.DrawMask(c.img, image.Rect(x, y, x+w, y+h), image.NewUniform(ink), image.Point{}, scaled, image.Point{}, xdraw.Over)
}

// qr draws a borderless low redundancy QR code scaled to size x size pixels.
func (c *canvas) qr(x, y, size int, content string) error {
	code, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return fmt.Errorf("qr: %w", err)
	}
	code.DisableBorder = true

	bitmap := code.Bitmap()
	modules := len(bitmap)
	for dy := 0; dy < size; dy++ {
		row := bitmap[dy*modules/size]
		for dx := 0; dx < size; dx++ {
			if row[dx*modules/size] {
				c.set(x+dx, y+dy)
			}
		}
	}

	return nil
}

func textMask(s string) *image.Alpha {
	metrics := face.Metrics()
	mask := image.NewAlpha(image.Rect(0, 0, font.MeasureString(face, s).Ceil(), metrics.Height.Ceil()))
	drawer := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	drawer.DrawString(s)

	return mask
}

func textWidth(s string, scale int) int {
	return font.MeasureString(face, s).Ceil() * scale
}

func textHeight(scale int) int {
	return face.Metrics().Height.Ceil() * scale
}

// scaleFor maps a point size to an integer multiple of the base face.
func scaleFor(size int) int {
	return max(1, (size+6)/face.Metrics().Height.Ceil())
}
