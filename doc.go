// Package fontbake bakes a list of glyph sequences into a single alpha
// atlas plus a compact lookup table, for renderers that draw pre-rendered
// glyphs instead of shaping text at run time.
//
// # Pipeline
//
// A bake runs these stages in order, each a plain function over the
// previous stage's output:
//
//  1. [CollectMetrics] measures every sequence with a [Backend].
//  2. [EstimateWidth] picks a target row width of the widest glyph times
//     the square root of the glyph count.
//  3. [Pack] places glyphs greedily into rows ([LinePacker]).
//  4. [RenderAtlas] draws every glyph at its packed position.
//  5. [EncodeLookup] builds the two lookup tables.
//  6. [Marshal] and [Compress] produce the asset bytes.
//
// [Bake] wires stages 1-5; [Result.Encode] performs stage 6.
//
// # Lookup tables
//
// Sequences shorter than four UTF-16 code units are stored in [Map16], a
// direct table indexed by their first code unit. Longer sequences are stored
// in [Dict32], ordered by their first two code units. Empty slots of the
// direct table have a zero size.
//
// # Usage
//
//	src, err := text.NewResolver().Resolve("DejaVu Sans")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg, _ := fontbake.NewConfig("DejaVu Sans", 32, fontbake.WithPadding(2))
//	res, err := fontbake.Bake(src.Face(32), cfg, []string{"A", "B", "é"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := res.Encode(cfg.Codec, cfg.Level)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = fontbake.WriteFile("font.bin", data)
//
// The pipeline is single threaded and keeps no global state apart from the
// logger configured with [SetLogger].
package fontbake
