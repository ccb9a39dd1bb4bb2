// Package text supplies glyph outlines for pathanim.Word shapes.
//
// Two providers implement pathanim.OutlineProvider:
//
//   - Provider reads fonts through golang.org/x/image/font/sfnt (default);
//   - GoTextProvider reads fonts through github.com/go-text/typesetting.
//
// Both return closed outlines in y-down coordinates, baseline at y=0, scaled
// to the configured size in pixels per em (see [WithSize]).
//
// # Example usage
//
//	provider, err := text.NewGoRegularProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	unit, err := pathanim.UnitPath(pathanim.Word{Text: "Go"}, provider)
//
// Fonts can also be loaded from disk:
//
//	f, err := text.LoadFontFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider := text.NewProvider(f, text.WithSize(128))
//
// Providers keep scratch buffers and are not safe for concurrent use.
package text
