package pathanim

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// FillMode controls where a finished animation leaves the animated object.
type FillMode int

const (
	// FillHold keeps the object at its final position after completion.
	FillHold FillMode = iota
	// FillRemove returns the object to its initial position after completion.
	FillRemove
)

// String returns the SMIL name of the fill mode.
func (f FillMode) String() string {
	switch f {
	case FillHold:
		return "freeze"
	case FillRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Timing is the timing function applied within one cycle.
type Timing int

const (
	// TimingLinear moves at constant speed along the path.
	TimingLinear Timing = iota
)

// String returns the name of the timing function.
func (t Timing) String() string {
	if t == TimingLinear {
		return "linear"
	}
	return "unknown"
}

// Animation is the configuration handed to whatever moves an object along
// a path. It is not computed from the path.
type Animation struct {
	// Duration of one cycle.
	Duration time.Duration
	// RepeatCount is the number of cycles; fractional values end mid-path,
	// zero means one cycle and +Inf repeats forever.
	RepeatCount float64
	Fill        FillMode
	Timing      Timing
}

// DefaultAnimation returns the standard configuration: 3 second cycles,
// repeated 10 times, holding the final position, at constant speed.
func DefaultAnimation() Animation {
	return Animation{
		Duration:    3 * time.Second,
		RepeatCount: 10,
		Fill:        FillHold,
		Timing:      TimingLinear,
	}
}

// Validate reports whether the animation can be played.
func (a Animation) Validate() error {
	if a.Duration <= 0 {
		return fmt.Errorf("%w: duration %v must be positive", ErrInvalidAnimation, a.Duration)
	}
	if a.RepeatCount < 0 || math.IsNaN(a.RepeatCount) {
		return fmt.Errorf("%w: repeat count %v must not be negative", ErrInvalidAnimation, a.RepeatCount)
	}
	return nil
}

// cycles returns the effective number of cycles.
func (a Animation) cycles() float64 {
	if a.RepeatCount == 0 {
		return 1
	}
	return a.RepeatCount
}

// Total returns the active duration of the animation, or a negative
// duration when it repeats forever.
func (a Animation) Total() time.Duration {
	c := a.cycles()
	if math.IsInf(c, 1) {
		return -1
	}
	return time.Duration(float64(a.Duration) * c)
}

// motionSegment is one straight piece of the flattened path.
type motionSegment struct {
	line  Line
	start float64 // arc length at line.P0
}

// Motion moves a point along a path over time. Curves are flattened once at
// construction; time is spread over the flattened path by arc length, and
// jumps between subpaths take no time.
type Motion struct {
	anim     Animation
	segments []motionSegment
	first    Point
	last     Point
	total    float64
}

// NewMotion prepares p for playback with anim.
// It returns ErrEmptyPath if p has no points.
func NewMotion(p *Path, anim Animation, opts ...MotionOption) (*Motion, error) {
	if err := anim.Validate(); err != nil {
		return nil, err
	}
	o := defaultMotionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lines := p.Polylines(o.tolerance)
	if len(lines) == 0 {
		return nil, ErrEmptyPath
	}

	m := &Motion{anim: anim, first: lines[0][0]}
	for _, pl := range lines {
		m.last = pl[len(pl)-1]
		for i := 1; i < len(pl); i++ {
			l := NewLine(pl[i-1], pl[i])
			n := l.Length()
			if n == 0 {
				continue
			}
			m.segments = append(m.segments, motionSegment{line: l, start: m.total})
			m.total += n
		}
	}
	return m, nil
}

// Animation returns the animation configuration.
func (m *Motion) Animation() Animation {
	return m.anim
}

// Length returns the arc length travelled in one cycle.
func (m *Motion) Length() float64 {
	return m.total
}

// PointAt returns the position after travelling fraction u ∈ [0,1] of one
// cycle. u is clamped into range.
func (m *Motion) PointAt(u float64) Point {
	switch {
	case len(m.segments) == 0 || u <= 0:
		return m.first
	case u >= 1:
		return m.last
	}

	target := u * m.total
	i := sort.Search(len(m.segments), func(i int) bool {
		s := m.segments[i]
		return s.start+s.line.Length() >= target
	})
	if i == len(m.segments) {
		return m.last
	}
	s := m.segments[i]
	return s.line.Eval((target - s.start) / s.line.Length())
}

// PositionAt returns the position at elapsed time since the animation
// started, honoring repeat count and fill mode.
func (m *Motion) PositionAt(elapsed time.Duration) Point {
	if elapsed <= 0 {
		return m.first
	}

	cycles := m.anim.cycles()
	progress := float64(elapsed) / float64(m.anim.Duration)
	if progress >= cycles {
		if m.anim.Fill == FillRemove {
			return m.first
		}
		frac := cycles - math.Floor(cycles)
		if frac == 0 {
			return m.last
		}
		return m.PointAt(frac)
	}
	return m.PointAt(progress - math.Floor(progress))
}

// Frames returns n positions spread evenly over one cycle, including both
// ends. n < 2 returns just the start position.
func (m *Motion) Frames(n int) []Point {
	if n < 2 {
		return []Point{m.first}
	}
	out := make([]Point, n)
	for i := range out {
		out[i] = m.PointAt(float64(i) / float64(n-1))
	}
	return out
}
