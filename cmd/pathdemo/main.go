// Command pathdemo builds animation paths with pathanim and writes them as
// an animated SVG and a PNG preview.
//
// Plot a sine curve:
//
//	pathdemo -mode sine -width 300 -height 300 -count 30 -svg sine.svg
//
// Replay a series of taps, fitting a random shape between each pair:
//
//	pathdemo -mode taps -taps "20,20;200,120;80,260" -word Go -seed 7 -png taps.png
//
// Without -word the pool is wave, zigzag and the word "iOS"; pass -word ""
// to leave the word out.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pathanim"
	"github.com/gogpu/pathanim/raster"
	"github.com/gogpu/pathanim/svg"
	"github.com/gogpu/pathanim/text"
)

type config struct {
	mode     string
	width    int
	height   int
	count    int
	taps     string
	word     string
	font     string
	outlines string
	seed     uint64
	cycle    bool
	duration time.Duration
	repeat   float64
	svgPath  string
	pngPath  string
	minify   bool
	stroke   string
	verbose  bool
}

func main() {
	var cfg config
	defineFlags(flag.CommandLine, &cfg)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	pathanim.SetLogger(logger)

	if err := run(cfg); err != nil {
		log.Fatalf("pathdemo: %v", err)
	}
}

// defineFlags registers the command line flags on fs, storing values in cfg.
// The defaults reproduce the classic pool: wave, zigzag and the word "iOS".
func defineFlags(fs *flag.FlagSet, cfg *config) {
	fs.StringVar(&cfg.mode, "mode", "taps", "what to build: sine or taps")
	fs.IntVar(&cfg.width, "width", 400, "canvas width")
	fs.IntVar(&cfg.height, "height", 300, "canvas height")
	fs.IntVar(&cfg.count, "count", 0, "sine samples (0 = one per unit of width)")
	fs.StringVar(&cfg.taps, "taps", "40,150;200,60;360,240", "tap positions as \"x,y;x,y;...\"")
	fs.StringVar(&cfg.word, "word", "iOS", "also pick from a word shape tracing this text (empty for none)")
	fs.StringVar(&cfg.font, "font", "go", "font for -word: go, gomono or a .ttf/.otf path")
	fs.StringVar(&cfg.outlines, "outlines", "ximage", "outline backend: ximage or gotext")
	fs.Uint64Var(&cfg.seed, "seed", 1, "random seed for shape choice")
	fs.BoolVar(&cfg.cycle, "cycle", false, "pick shapes in order instead of at random")
	fs.DurationVar(&cfg.duration, "dur", 3*time.Second, "duration of one animation cycle")
	fs.Float64Var(&cfg.repeat, "repeat", 10, "animation repeat count (negative = forever)")
	fs.StringVar(&cfg.svgPath, "svg", "pathdemo.svg", "SVG output file (empty to skip)")
	fs.StringVar(&cfg.pngPath, "png", "", "PNG preview output file (empty to skip)")
	fs.BoolVar(&cfg.minify, "minify", false, "minify the SVG output")
	fs.StringVar(&cfg.stroke, "stroke", "#3366cc", "trail colour as hex RGB or RGBA")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
}

func run(cfg config) error {
	var (
		trails []*pathanim.Path
		motion *pathanim.Path
		err    error
	)
	switch cfg.mode {
	case "sine":
		motion, err = buildSine(cfg)
		trails = []*pathanim.Path{motion}
	case "taps":
		trails, err = buildTaps(cfg)
		if len(trails) > 0 {
			motion = trails[len(trails)-1]
		}
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		return err
	}

	anim := pathanim.DefaultAnimation()
	anim.Duration = cfg.duration
	anim.RepeatCount = cfg.repeat
	if cfg.repeat < 0 {
		anim.RepeatCount = math.Inf(1)
	}

	stroke, err := raster.ParseHex(cfg.stroke)
	if err != nil {
		return err
	}

	if cfg.svgPath != "" {
		if err := writeSVG(cfg, trails, motion, anim, stroke); err != nil {
			return err
		}
	}
	if cfg.pngPath != "" {
		if err := writePNG(cfg, trails, motion, anim, stroke); err != nil {
			return err
		}
	}
	return nil
}

func buildSine(cfg config) (*pathanim.Path, error) {
	const margin = 10
	rect := pathanim.RectFromOrigin(margin, margin, float64(cfg.width-2*margin), float64(cfg.height-2*margin))
	return pathanim.Sample(rect, cfg.count, pathanim.SinePlot)
}

func buildTaps(cfg config) ([]*pathanim.Path, error) {
	taps, err := parseTaps(cfg.taps)
	if err != nil {
		return nil, err
	}
	if len(taps) < 2 {
		return nil, errors.New("need at least two taps")
	}

	shapes := []pathanim.UnitShape{pathanim.Wave{}, pathanim.Zigzag{}}
	opts := []pathanim.SessionOption{
		pathanim.WithStart(taps[0]),
		pathanim.WithRand(rand.New(rand.NewPCG(cfg.seed, cfg.seed))),
	}
	if cfg.word != "" {
		provider, err := outlineProvider(cfg.font, cfg.outlines)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, pathanim.Word{Text: cfg.word})
		opts = append(opts, pathanim.WithOutlines(provider))
	}
	opts = append(opts, pathanim.WithShapes(shapes...))
	if cfg.cycle {
		opts = append(opts, pathanim.WithShapePicker(pathanim.CyclePicker()))
	}

	session := pathanim.NewSession(opts...)
	trails := make([]*pathanim.Path, 0, len(taps)-1)
	for _, p := range taps[1:] {
		fitted, err := session.Tap(p)
		if err != nil {
			return nil, err
		}
		slog.Info("fitted shape",
			"shape", session.Shape().Name(),
			"to", p.String(),
			"length", fitted.Length,
			"rotation", fitted.Rotation)
		trails = append(trails, fitted.Path)
	}
	return trails, nil
}

// parseTaps parses "x,y;x,y;..." into points.
func parseTaps(s string) ([]pathanim.Point, error) {
	var pts []pathanim.Point
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("tap %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("tap %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("tap %q: %w", pair, err)
		}
		pts = append(pts, pathanim.Pt(x, y))
	}
	return pts, nil
}

func outlineProvider(font, backend string) (pathanim.OutlineProvider, error) {
	var data []byte
	switch font {
	case "go":
		data = goregular.TTF
	case "gomono":
		data = gomono.TTF
	default:
		// #nosec G304 -- font path comes from the command line
		b, err := os.ReadFile(font)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}

	switch backend {
	case "ximage":
		f, err := text.ParseFont(data)
		if err != nil {
			return nil, err
		}
		return text.NewProvider(f), nil
	case "gotext":
		p, err := text.NewGoTextProvider(data)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown outline backend %q", backend)
	}
}

func writeSVG(cfg config, trails []*pathanim.Path, motion *pathanim.Path, anim pathanim.Animation, stroke color.Color) error {
	opts := []svg.Option{svg.WithStroke(stroke, 0)}
	if cfg.minify {
		opts = append(opts, svg.WithMinify())
	}
	doc := svg.Document{
		Width:     float64(cfg.width),
		Height:    float64(cfg.height),
		Trails:    trails,
		Motion:    motion,
		Animation: anim,
	}
	err := writeFile(cfg.svgPath, func(w io.Writer) error {
		return svg.Encode(w, doc, opts...)
	})
	if err != nil {
		return err
	}
	slog.Info("wrote svg", "path", cfg.svgPath, "trails", len(trails))
	return nil
}

// writeFile creates path, runs write on it and reports the first error,
// including the one from closing the file.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writePNG(cfg config, trails []*pathanim.Path, motion *pathanim.Path, anim pathanim.Animation, stroke color.Color) error {
	all := pathanim.NewPath()
	for _, t := range trails {
		all.Append(t)
	}

	var m *pathanim.Motion
	if motion != nil {
		var err error
		if m, err = pathanim.NewMotion(motion, anim); err != nil {
			return err
		}
	}

	img := raster.Render(all, m, raster.Options{Width: cfg.width, Height: cfg.height, Stroke: stroke})
	if err := raster.SavePNG(cfg.pngPath, img); err != nil {
		return err
	}
	slog.Info("wrote png", "path", cfg.pngPath)
	return nil
}
