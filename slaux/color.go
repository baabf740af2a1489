package slaux

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	math "github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/shaderlab"
)

// HSV conversion adapted from Esme Lamb's (@dedelala) color manipulation work
// presented at Gophercon AU 2024.
// https://github.com/dedelala/disco/tree/main/color

// ColorFrom converts c to a Color property value with non-premultiplied
// channels in the range [0, 1].
func ColorFrom(c color.Color) shaderlab.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return shaderlab.Color{
		R: float32(nc.R) / math.MaxUint8,
		G: float32(nc.G) / math.MaxUint8,
		B: float32(nc.B) / math.MaxUint8,
		A: float32(nc.A) / math.MaxUint8,
	}
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (shaderlab.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return shaderlab.Color{}, fmt.Errorf("hex color %q: %w", s, shaderlab.ErrInvalidArgument)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return shaderlab.Color{}, fmt.Errorf("hex color %q: %w", s, shaderlab.ErrInvalidArgument)
	}
	return ColorFrom(color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}), nil
}

// Gradient returns the color at t in [0, 1] of a gradient from c0 to c1
// interpolated in HSV space along the shortest hue path. Alpha is interpolated linearly.
func Gradient(c0, c1 shaderlab.Color, t float32) shaderlab.Color {
	t = ms1.Clamp(t, 0, 1)
	h0, s0, v0 := rgbToHSV(c0.R, c0.G, c0.B)
	h1, s1, v1 := rgbToHSV(c1.R, c1.G, c1.B)
	r, g, b := hsvToRGB(interpHSV(h0, s0, v0, h1, s1, v1, t))
	return shaderlab.Color{
		R: ms1.Clamp(r, 0, 1),
		G: ms1.Clamp(g, 0, 1),
		B: ms1.Clamp(b, 0, 1),
		A: ms1.Interp(c0.A, c1.A, t),
	}
}

func interpHSV(h0, s0, v0, h1, s1, v1, t float32) (h, s, v float32) {
	switch {
	case h1-h0 > 0.5:
		h0 += 1.0
	case h1-h0 < -0.5:
		h1 += 1.0
	}
	h = ms1.Interp(h0, h1, t)
	if h > 1 {
		h -= 1
	}
	s = ms1.Interp(s0, s1, t)
	v = ms1.Interp(v0, v1, t)
	return h, s, v
}

// hsvToRGB converts hue, saturation and brightness values on the range of 0.0
// to 1.0 to RGB floating point values on the range of 0.0 to 1.0
func hsvToRGB(h, s, v float32) (r, g, b float32) {
	var (
		c = s * v
		x = c * (1 - math.Abs(math.Mod(h*6, 2)-1))
		m = v - c
	)
	switch {
	case h >= 0 && h <= 1.0/6:
		r, g, b = c, x, 0
	case h > 1.0/6 && h <= 2.0/6:
		r, g, b = x, c, 0
	case h > 2.0/6 && h <= 3.0/6:
		r, g, b = 0, c, x
	case h > 3.0/6 && h <= 4.0/6:
		r, g, b = 0, x, c
	case h > 4.0/6 && h <= 5.0/6:
		r, g, b = x, 0, c
	case h > 5.0/6 && h <= 1.0:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// rgbToHSV converts red, green, and blue floating point values on the range
// 0.0 to 1.0 to hue, saturation and brightness values on the range 0.0 to 1.0
func rgbToHSV(r, g, b float32) (h, s, v float32) {
	var (
		xmax = max(r, g, b)
		xmin = min(r, g, b)
		c    = xmax - xmin
	)
	v = xmax
	switch {
	case c == 0:
		h = 0
	case v == r:
		h = (g - b) / (c * 6)
	case v == g:
		h = 1.0/3 + (b-r)/(c*6)
	case v == b:
		h = 2.0/3 + (r-g)/(c*6)
	}
	if h < 0 {
		h += 1
	}
	if xmax > 0 {
		s = c / xmax
	}
	return h, s, v
}
