// Package pathanim builds the paths that an object is animated along.
//
// # Overview
//
// pathanim has two independent pieces of geometry:
//
//   - the sampler turns a function f: [0,1] → [0,1] into a polyline placed
//     inside a rectangle ([Sample]);
//   - the fitter takes a path authored in unit space and scales, rotates and
//     translates it so it runs from one point to another ([Fit]).
//
// Unit paths come from [UnitShape] recipes: [Wave], [Zigzag] and [Word].
// Every recipe starts at (0,0) and ends at (1,0), which is what lets the
// fitter stretch any of them between two arbitrary points.
//
// # Quick Start
//
//	import "github.com/gogpu/pathanim"
//
//	rect := pathanim.RectFromOrigin(0, 0, 300, 300)
//	sine, err := pathanim.Sample(rect, 30, pathanim.SinePlot)
//
//	unit, _ := pathanim.UnitPath(pathanim.Wave{}, nil)
//	fitted := pathanim.Fit(unit, pathanim.Pt(20, 20), pathanim.Pt(200, 120))
//
//	motion, _ := pathanim.NewMotion(fitted.Path, pathanim.DefaultAnimation())
//	pos := motion.PositionAt(1500 * time.Millisecond)
//
// # Coordinate spaces
//
// Unit space is y-up: unit (0,0) is the bottom-left of a target rectangle
// and (1,1) its top-right. Screen space is y-down. [MapUnitPoint] and
// [UnitToRect] convert between them for the sampler. The fitter works
// directly in whatever space the two points are given in.
//
// # Glyph outlines
//
// [Word] needs an [OutlineProvider]. The text sub-package provides one
// backed by golang.org/x/image/font/sfnt and one backed by
// github.com/go-text/typesetting.
//
// # Output
//
// The svg sub-package writes a path plus an animateMotion element; the
// raster sub-package renders PNG previews. cmd/pathdemo ties everything
// together.
//
// # Logging
//
// pathanim is silent by default. Call [SetLogger] to enable structured
// logging through log/slog.
package pathanim
