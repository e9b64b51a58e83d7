package fontbake

// Font is the baked font asset: the alpha atlas and its lookup tables.
type Font struct {
	// Bitmap holds the atlas alpha channel row-major, one byte per pixel.
	Bitmap []byte

	// Width is the atlas width in pixels.
	Width uint32

	Lookup
}

// Height returns the atlas height in pixels.
func (f *Font) Height() int {
	if f.Width == 0 {
		return 0
	}
	return len(f.Bitmap) / int(f.Width)
}

// Alpha returns the coverage of the atlas pixel at x, y.
func (f *Font) Alpha(x, y int) uint8 {
	if x < 0 || y < 0 || x >= int(f.Width) || y >= f.Height() {
		return 0
	}
	return f.Bitmap[y*int(f.Width)+x]
}
