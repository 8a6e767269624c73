package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from any backend
type RGB struct {
	R, G, B uint8
}

// RGBA is a color with straight (non-premultiplied) alpha
// Zero value is fully transparent black
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}

	Transparent = RGBA{}
	Black       = RGBA{0, 0, 0, 255}
	White       = RGBA{255, 255, 255, 255}
	Yellow      = RGBA{255, 255, 0, 255}
	Red         = RGBA{255, 0, 0, 255}
	Green       = RGBA{0, 128, 0, 255}
	Orange      = RGBA{255, 165, 0, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// RGB drops the alpha channel
func (c RGBA) RGB() RGB {
	return RGB{c.R, c.G, c.B}
}

// Scale multiplies all four channels by factor, the premultiplied tint
// convention used by sprite batches (color * alpha)
func (c RGBA) Scale(factor float64) RGBA {
	if factor <= 0 {
		return Transparent
	}
	if factor >= 1 {
		return c
	}
	return RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: uint8(float64(c.A) * factor),
	}
}

// Premultiply converts a straight-alpha color to the premultiplied tint
// form, color channels scaled by A
func (c RGBA) Premultiply() RGBA {
	if c.A == 255 {
		return c
	}
	mul := func(v uint8) uint8 { return uint8((int(v)*int(c.A) + 127) / 255) }
	return RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// Alpha returns the alpha channel in [0, 1]
func (c RGBA) Alpha() float64 {
	return float64(c.A) / 255
}

// IsTransparent reports whether nothing would be painted with this tint
func (c RGBA) IsTransparent() bool {
	return c.A == 0
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color
func ParseHex(s string) (RGBA, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Transparent, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGBA{r, g, b, 255}, nil
}

// Hex formats the color channels as "#rrggbb", alpha is dropped
func (c RGBA) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// BlendLab mixes dst toward src by t in CIE-L*a*b* space, which keeps
// perceived brightness steady while a tint fades in or out
func BlendLab(dst, src RGB, t float64) RGB {
	if t <= 0 {
		return dst
	}
	if t >= 1 {
		return src
	}
	a := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	b := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return RGB{r, g, bl}
}
