// Package text is the OpenType rendering backend for fontbake.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight font resource (parses TTF/OTF/TTC data once)
//   - Face: a font at one pixel size, implementing [fontbake.Backend]
//   - Resolver: finds a FontSource by file path or system family name
//
// Sequences are shaped with the HarfBuzz port of go-text/typesetting, so
// combining sequences and ligatures measure and draw as one glyph run.
// Outlines come from golang.org/x/image/font/sfnt and are rasterized with
// golang.org/x/image/vector into the atlas.
//
// # Example usage
//
//	source, err := text.NewResolver().Resolve("DejaVu Sans")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face := source.Face(32)
//
//	advance, ink := face.Measure("é")
//	dst := image.NewAlpha(image.Rect(0, 0, 64, 64))
//	face.DrawText(dst, "é", fontbake.Point{X: -ink.X, Y: -ink.Y})
//
// A Face is not safe for concurrent use.
package text
