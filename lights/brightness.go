package lights

// Luma converts an ARGB color to an 8-bit perceived brightness. Colors with
// a non-opaque alpha are premultiplied first; the channel weights favor
// green, the usual integer luma approximation.
func Luma(color uint32) uint32 {
	alpha := (color >> 24) & 0xFF
	red := (color >> 16) & 0xFF
	green := (color >> 8) & 0xFF
	blue := color & 0xFF

	if alpha != 0xFF {
		red = red * alpha / 0xFF
		green = green * alpha / 0xFF
		blue = blue * alpha / 0xFF
	}

	return (77*red + 150*green + 29*blue) >> 8
}

// Scale maps an 8-bit brightness onto the device range [0, max], truncating.
func Scale(brightness uint32, max int) int {
	return int(brightness) * max / 255
}

// Scaled is the device brightness for a state given the device maximum.
func Scaled(state State, max int) int {
	return Scale(Luma(state.Color), max)
}

// IsLit reports whether any RGB channel is non-zero, ignoring alpha. Only
// lit states take part in arbitration, however transparent they are.
func (s State) IsLit() bool {
	return s.Color&0x00FFFFFF != 0
}
