package pathanim

import (
	"errors"
	"math"
	"testing"
	"time"
)

// lPath is 30 units east then 10 units south: 40 units in total.
func lPath() *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(30, 0)
	p.LineTo(30, 10)
	return p
}

func TestAnimation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		anim    Animation
		wantErr bool
	}{
		{"default", DefaultAnimation(), false},
		{"forever", Animation{Duration: time.Second, RepeatCount: math.Inf(1)}, false},
		{"zero repeat", Animation{Duration: time.Second}, false},
		{"zero duration", Animation{RepeatCount: 1}, true},
		{"negative duration", Animation{Duration: -time.Second}, true},
		{"negative repeat", Animation{Duration: time.Second, RepeatCount: -1}, true},
		{"NaN repeat", Animation{Duration: time.Second, RepeatCount: math.NaN()}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.anim.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAnimation) {
				t.Errorf("Validate() error = %v, want ErrInvalidAnimation", err)
			}
		})
	}
}

func TestDefaultAnimation(t *testing.T) {
	a := DefaultAnimation()
	if a.Duration != 3*time.Second || a.RepeatCount != 10 || a.Fill != FillHold || a.Timing != TimingLinear {
		t.Errorf("DefaultAnimation() = %+v", a)
	}
	if got := a.Total(); got != 30*time.Second {
		t.Errorf("Total() = %v, want 30s", got)
	}
}

func TestAnimation_Total(t *testing.T) {
	tests := []struct {
		repeat float64
		want   time.Duration
	}{
		{0, 2 * time.Second},
		{1, 2 * time.Second},
		{2.5, 5 * time.Second},
		{math.Inf(1), -1},
	}
	for _, tt := range tests {
		a := Animation{Duration: 2 * time.Second, RepeatCount: tt.repeat}
		if got := a.Total(); got != tt.want {
			t.Errorf("Total() with repeat %v = %v, want %v", tt.repeat, got, tt.want)
		}
	}
}

func TestFillMode_String(t *testing.T) {
	if FillHold.String() != "freeze" || FillRemove.String() != "remove" {
		t.Errorf("FillMode names = %q/%q", FillHold, FillRemove)
	}
	if TimingLinear.String() != "linear" {
		t.Errorf("TimingLinear.String() = %q", TimingLinear.String())
	}
}

func TestNewMotion_Errors(t *testing.T) {
	if _, err := NewMotion(NewPath(), DefaultAnimation()); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("empty path error = %v, want ErrEmptyPath", err)
	}
	if _, err := NewMotion(lPath(), Animation{}); !errors.Is(err, ErrInvalidAnimation) {
		t.Errorf("zero animation error = %v, want ErrInvalidAnimation", err)
	}
}

func TestMotion_PointAt(t *testing.T) {
	m, err := NewMotion(lPath(), DefaultAnimation())
	if err != nil {
		t.Fatal(err)
	}
	if m.Length() != 40 {
		t.Errorf("Length() = %v, want 40", m.Length())
	}

	tests := []struct {
		u    float64
		want Point
	}{
		{-1, Pt(0, 0)},
		{0, Pt(0, 0)},
		{0.25, Pt(10, 0)},
		{0.5, Pt(20, 0)},
		{0.75, Pt(30, 0)},
		{0.875, Pt(30, 5)},
		{1, Pt(30, 10)},
		{7, Pt(30, 10)},
	}
	for _, tt := range tests {
		if got := m.PointAt(tt.u); !pointNear(got, tt.want) {
			t.Errorf("PointAt(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestMotion_JumpsTakeNoTime(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(100, 100)
	p.LineTo(100, 110)

	m, err := NewMotion(p, DefaultAnimation())
	if err != nil {
		t.Fatal(err)
	}
	if m.Length() != 20 {
		t.Errorf("Length() = %v, want 20", m.Length())
	}
	if got := m.PointAt(0.75); !pointNear(got, Pt(100, 105)) {
		t.Errorf("PointAt(0.75) = %v, want (100, 105)", got)
	}
}

func TestMotion_Curve(t *testing.T) {
	k := 0.5522847498 * 100
	p := NewPath()
	p.MoveTo(100, 0)
	p.CubicTo(100, k, k, 100, 0, 100)

	m, err := NewMotion(p, DefaultAnimation(), WithTolerance(0.01))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.Length()-50*math.Pi) > 0.1 {
		t.Errorf("Length() = %v, want about %v", m.Length(), 50*math.Pi)
	}
	mid := m.PointAt(0.5)
	want := Pt(100/math.Sqrt2, 100/math.Sqrt2)
	if mid.Distance(want) > 0.5 {
		t.Errorf("PointAt(0.5) = %v, want near %v", mid, want)
	}
}

func TestMotion_PositionAt(t *testing.T) {
	sec := time.Second
	tests := []struct {
		name    string
		anim    Animation
		elapsed time.Duration
		want    Point
	}{
		{"before start", Animation{Duration: 4 * sec, RepeatCount: 1}, -sec, Pt(0, 0)},
		{"first cycle", Animation{Duration: 4 * sec, RepeatCount: 2}, sec, Pt(10, 0)},
		{"second cycle", Animation{Duration: 4 * sec, RepeatCount: 2}, 5 * sec, Pt(10, 0)},
		{"hold end", Animation{Duration: 4 * sec, RepeatCount: 2}, 8 * sec, Pt(30, 10)},
		{"hold long after", Animation{Duration: 4 * sec, RepeatCount: 2}, time.Hour, Pt(30, 10)},
		{"remove after", Animation{Duration: 4 * sec, RepeatCount: 2, Fill: FillRemove}, 9 * sec, Pt(0, 0)},
		{"zero repeat is one cycle", Animation{Duration: 4 * sec}, 4 * sec, Pt(30, 10)},
		{"fractional hold", Animation{Duration: 4 * sec, RepeatCount: 2.5}, 11 * sec, Pt(20, 0)},
		{"fractional mid", Animation{Duration: 4 * sec, RepeatCount: 2.5}, 9 * sec, Pt(10, 0)},
		{"forever", Animation{Duration: 4 * sec, RepeatCount: math.Inf(1)}, 4001 * sec, Pt(10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMotion(lPath(), tt.anim)
			if err != nil {
				t.Fatal(err)
			}
			if got := m.PositionAt(tt.elapsed); !pointNear(got, tt.want) {
				t.Errorf("PositionAt(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestMotion_Frames(t *testing.T) {
	m, err := NewMotion(lPath(), DefaultAnimation())
	if err != nil {
		t.Fatal(err)
	}

	want := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0), Pt(30, 10)}
	got := m.Frames(5)
	if len(got) != len(want) {
		t.Fatalf("Frames(5) returned %d points", len(got))
	}
	for i := range want {
		if !pointNear(got[i], want[i]) {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}

	if got := m.Frames(1); len(got) != 1 || got[0] != Pt(0, 0) {
		t.Errorf("Frames(1) = %v, want [(0, 0)]", got)
	}
}

func TestMotion_SinglePoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(4, 4)
	m, err := NewMotion(p, DefaultAnimation())
	if err != nil {
		t.Fatal(err)
	}
	if got := m.PositionAt(time.Second); got != Pt(4, 4) {
		t.Errorf("PositionAt() = %v, want (4, 4)", got)
	}
}
