package pathanim

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()
	if s.Anchor() != Pt(0, 0) {
		t.Errorf("Anchor() = %v, want origin", s.Anchor())
	}
	if s.Shape() != nil {
		t.Errorf("Shape() = %v, want nil before the first tap", s.Shape())
	}
	if !s.Path().IsEmpty() {
		t.Error("Path() should be empty before the first tap")
	}
	if s.Length() != 0 || s.Rotation() != 0 {
		t.Errorf("Length/Rotation = %v/%v, want 0/0", s.Length(), s.Rotation())
	}
}

func TestSession_TapChainsAnchors(t *testing.T) {
	s := NewSession(
		WithStart(Pt(10, 10)),
		WithShapes(Wave{}, Zigzag{}),
		WithShapePicker(CyclePicker()),
	)

	taps := []struct {
		to        Point
		wantShape string
	}{
		{Pt(110, 10), "wave"},
		{Pt(110, 60), "zigzag"},
		{Pt(10, 60), "wave"},
	}

	from := Pt(10, 10)
	for i, tt := range taps {
		f, err := s.Tap(tt.to)
		if err != nil {
			t.Fatalf("tap %d: Tap() error = %v", i, err)
		}
		if got := s.Shape().Name(); got != tt.wantShape {
			t.Errorf("tap %d: Shape() = %q, want %q", i, got, tt.wantShape)
		}
		if got := s.Path().StartPoint(); !pointNear(got, from) {
			t.Errorf("tap %d: path starts at %v, want %v", i, got, from)
		}
		if got := s.Path().CurrentPoint(); !pointNear(got, tt.to) {
			t.Errorf("tap %d: path ends at %v, want %v", i, got, tt.to)
		}
		if s.Path() != f.Path {
			t.Errorf("tap %d: Path() is not the returned fit", i)
		}
		if want := Distance(from, tt.to); math.Abs(s.Length()-want) > testEpsilon {
			t.Errorf("tap %d: Length() = %v, want %v", i, s.Length(), want)
		}
		if want := Angle(from, tt.to); math.Abs(s.Rotation()-want) > testEpsilon {
			t.Errorf("tap %d: Rotation() = %v, want %v", i, s.Rotation(), want)
		}
		if s.Anchor() != tt.to {
			t.Errorf("tap %d: Anchor() = %v, want %v", i, s.Anchor(), tt.to)
		}
		from = tt.to
	}
}

func TestSession_TapSamePoint(t *testing.T) {
	s := NewSession(WithStart(Pt(5, 5)))
	f, err := s.Tap(Pt(5, 5))
	if err != nil {
		t.Fatalf("Tap() error = %v", err)
	}
	if f.Length != 0 {
		t.Errorf("Length = %v, want 0", f.Length)
	}
	if s.Anchor() != Pt(5, 5) {
		t.Errorf("Anchor() = %v, want (5, 5)", s.Anchor())
	}
}

func TestSession_EmptyShapePool(t *testing.T) {
	s := NewSession(WithShapes())
	if _, err := s.Tap(Pt(1, 1)); !errors.Is(err, ErrEmptyShapePool) {
		t.Errorf("Tap() error = %v, want ErrEmptyShapePool", err)
	}
}

func TestSession_ErrorKeepsState(t *testing.T) {
	s := NewSession(
		WithShapes(Wave{}, Word{Text: "Go"}),
		WithShapePicker(CyclePicker()),
	)
	if _, err := s.Tap(Pt(100, 0)); err != nil {
		t.Fatalf("first Tap() error = %v", err)
	}
	path, shape := s.Path(), s.Shape()

	// No outline provider configured, so the word cannot be traced.
	if _, err := s.Tap(Pt(100, 100)); !errors.Is(err, ErrNoOutlineProvider) {
		t.Fatalf("second Tap() error = %v, want ErrNoOutlineProvider", err)
	}
	if s.Anchor() != Pt(100, 0) {
		t.Errorf("Anchor() = %v, want unchanged (100, 0)", s.Anchor())
	}
	if s.Path() != path || s.Shape() != shape {
		t.Error("failed tap replaced the active path")
	}
	if s.Length() != 100 {
		t.Errorf("Length() = %v, want unchanged 100", s.Length())
	}
}

func TestSession_Word(t *testing.T) {
	s := NewSession(
		WithOutlines(defaultBoxes()),
		WithShapes(Word{Text: "ab"}),
	)
	f, err := s.Tap(Pt(0, 200))
	if err != nil {
		t.Fatalf("Tap() error = %v", err)
	}
	if got := f.Path.CurrentPoint(); !pointNear(got, Pt(0, 200)) {
		t.Errorf("word ends at %v, want (0, 200)", got)
	}
}

func TestSession_SeededRandIsReproducible(t *testing.T) {
	names := func() []string {
		s := NewSession(
			WithRand(rand.New(rand.NewPCG(7, 11))),
			WithShapes(Wave{}, Zigzag{}, Word{Text: "x"}),
			WithOutlines(boxOutlines{sizes: map[rune][2]float64{'x': {4, 4}}}),
		)
		var out []string
		for i := range 20 {
			if _, err := s.Tap(Pt(float64(i+1)*10, 0)); err != nil {
				t.Fatalf("Tap() error = %v", err)
			}
			out = append(out, s.Shape().Name())
		}
		return out
	}

	a, b := names(), names()
	seen := map[string]bool{}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tap %d picked %q then %q with the same seed", i, a[i], b[i])
		}
		seen[a[i]] = true
	}
	if len(seen) < 2 {
		t.Errorf("20 random picks used only %v", seen)
	}
}

func TestCyclePicker(t *testing.T) {
	pool := []UnitShape{Wave{}, Zigzag{}, Word{Text: "a"}}
	pick := CyclePicker()
	want := []string{"wave", "zigzag", "word(a)", "wave", "zigzag"}
	for i, w := range want {
		if got := pick(pool).Name(); got != w {
			t.Errorf("pick %d = %q, want %q", i, got, w)
		}
	}
}

func TestWithShapes_CopiesSlice(t *testing.T) {
	pool := []UnitShape{Wave{}}
	s := NewSession(WithShapes(pool...))
	pool[0] = Zigzag{}
	if _, err := s.Tap(Pt(1, 0)); err != nil {
		t.Fatal(err)
	}
	if got := s.Shape().Name(); got != "wave" {
		t.Errorf("Shape() = %q, want wave", got)
	}
}
