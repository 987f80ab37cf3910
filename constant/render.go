package constant

// Depth Rendering
const (
	// GlyphRamp encodes body depth, rearmost to foremost.
	// The lowest z maps to the first rune, the highest to the last.
	GlyphRamp = `.':-_^+=~*oO#%&@`

	// BlankRune fills grid cells with no body in them
	BlankRune = ' '
)
