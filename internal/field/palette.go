package field

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as 0..1 channel values.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Palette is the fixed set of particle colours.
var Palette = [6]RGB{
	{R: 255, G: 107, B: 107}, // coral
	{R: 78, G: 205, B: 196},  // teal
	{R: 69, G: 183, B: 209},  // sky
	{R: 150, G: 206, B: 180}, // sage
	{R: 255, G: 234, B: 167}, // cream
	{R: 255, G: 255, B: 255}, // white
}

// LinkColor is used for connection lines.
var LinkColor = RGB{R: 255, G: 255, B: 255}

// Background sits under everything the field draws.
var Background = RGB{R: 12, G: 14, B: 26}

// PickColor returns a uniformly chosen palette entry.
func PickColor(rng Source) RGB {
	i := int(rng.Float64() * float64(len(Palette)))
	if i >= len(Palette) {
		i = len(Palette) - 1
	}
	return Palette[i]
}
