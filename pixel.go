package imapp

import "image/color"

// Pixel is a single image pixel with four 8-bit channels:
// red, green, blue, and alpha.
//
// The zero value is fully transparent black. Use White (or NewPixel with
// explicit channels) for the opaque-white default that Image construction
// and Resize rely on.
type Pixel struct {
	R, G, B, A uint8
}

// White is the opaque-white pixel used as the default fill for freshly
// constructed and grown images.
var White = Pixel{R: 255, G: 255, B: 255, A: 255}

// NewPixel constructs an opaque pixel with the given color channels.
func NewPixel(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// NewPixelAlpha constructs a pixel with explicit opacity.
func NewPixelAlpha(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// Color converts the pixel to a color.Color (non-premultiplied).
func (p Pixel) Color() color.Color {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// PixelFromColor converts any color.Color to a Pixel, discarding
// precision beyond 8 bits per channel.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}
