// Package codec converts six-digit hex colors into the textual color
// encodings shown to users and computes the contrasting text color.
//
// Every conversion assumes a validated "#rrggbb" input. Malformed input never
// panics but produces meaningless channel values; validate with hexcolor first.
package codec

import (
	"fmt"
	"math"
	"strconv"
)

// RGB holds 8-bit red, green and blue channels.
type RGB struct {
	R, G, B int
}

// Hex formats the channels as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL is hue in degrees [0,360) with saturation and lightness in [0,1].
type HSL struct {
	H, S, L float64
}

// HSB is hue in degrees [0,360) with saturation and brightness in [0,1].
type HSB struct {
	H, S, B float64
}

// CMYK components, each in [0,1].
type CMYK struct {
	C, M, Y, K float64
}

// HexToRGB decodes the three 2-digit channel slices of hex.
func HexToRGB(hex string) RGB {
	return RGB{
		R: channel(hex, 1),
		G: channel(hex, 3),
		B: channel(hex, 5),
	}
}

func channel(hex string, start int) int {
	if len(hex) < start+2 {
		return 0
	}
	v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}

// RGBString renders hex as "rgb(r, g, b)".
func RGBString(hex string) string {
	c := HexToRGB(hex)
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HexToRGBA renders hex as "rgba(r, g, b, alpha)".
func HexToRGBA(hex string, alpha float64) string {
	c := HexToRGB(hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, alpha)
}

func normalized(hex string) (r, g, b, maxC, minC float64) {
	c := HexToRGB(hex)
	r = float64(c.R) / 255
	g = float64(c.G) / 255
	b = float64(c.B) / 255
	maxC = math.Max(r, math.Max(g, b))
	minC = math.Min(r, math.Min(g, b))
	return r, g, b, maxC, minC
}

// hue applies the piecewise formula on whichever channel is maximal.
func hue(r, g, b, maxC, minC float64) float64 {
	d := maxC - minC
	if d == 0 {
		return 0
	}
	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}
	return h
}

// HSLOf returns the HSL decomposition of hex.
func HSLOf(hex string) HSL {
	r, g, b, maxC, minC := normalized(hex)
	l := (maxC + minC) / 2
	if maxC == minC {
		return HSL{H: 0, S: 0, L: l}
	}
	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}
	return HSL{H: hue(r, g, b, maxC, minC), S: s, L: l}
}

// HexToHSL renders hex as "hsl(h, s%, l%)" with one decimal place.
func HexToHSL(hex string) string {
	v := HSLOf(hex)
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", v.H, v.S*100, v.L*100)
}

// HSBOf returns the HSB (HSV) decomposition of hex.
func HSBOf(hex string) HSB {
	r, g, b, maxC, minC := normalized(hex)
	s := 0.0
	if maxC != 0 {
		s = (maxC - minC) / maxC
	}
	return HSB{H: hue(r, g, b, maxC, minC), S: s, B: maxC}
}

// HexToHSB renders hex as "hsb(h, s%, b%)" rounded to integers.
func HexToHSB(hex string) string {
	v := HSBOf(hex)
	return fmt.Sprintf("hsb(%d, %d%%, %d%%)",
		int(math.Round(v.H)), int(math.Round(v.S*100)), int(math.Round(v.B*100)))
}

// CMYKOf returns the CMYK decomposition of hex. Pure black yields K=1 and
// zero for the other components.
func CMYKOf(hex string) CMYK {
	r, g, b, maxC, _ := normalized(hex)
	k := 1 - maxC
	if k == 1 {
		return CMYK{K: 1}
	}
	return CMYK{
		C: nonNegative((1 - r - k) / (1 - k)),
		M: nonNegative((1 - g - k) / (1 - k)),
		Y: nonNegative((1 - b - k) / (1 - k)),
		K: k,
	}
}

// nonNegative clamps float noise below zero so "-0.0%" is never printed.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// HexToCMYK renders hex as "cmyk(c%, m%, y%, k%)" with one decimal place.
func HexToCMYK(hex string) string {
	v := CMYKOf(hex)
	return fmt.Sprintf("cmyk(%.1f%%, %.1f%%, %.1f%%, %.1f%%)", v.C*100, v.M*100, v.Y*100, v.K*100)
}

// Luminance is the weighted channel sum 0.299r + 0.587g + 0.114b on 0..255.
func Luminance(hex string) float64 {
	c := HexToRGB(hex)
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// TextColor returns "black" for light backgrounds and "white" otherwise.
func TextColor(hex string) string {
	if Luminance(hex) > 128 {
		return "black"
	}
	return "white"
}
