package style

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

// Bezier returns the CSS cubic-bezier easing with control points (x1, y1) and (x2, y2).
func Bezier(x1, y1, x2, y2 float64) Easing {
	x1 = min(max(x1, 0), 1)
	x2 = min(max(x2, 0), 1)

	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		s := x
		for range 8 {
			d := sampleX(s) - x
			if math.Abs(d) < 1e-7 {
				return s
			}
			slope := slopeX(s)
			if math.Abs(slope) < 1e-6 {
				break
			}
			s -= d / slope
		}

		// newton failed, bisect
		lo, hi := 0.0, 1.0
		s = x
		for lo < hi {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				break
			}
			if x > v {
				lo = s
			} else {
				hi = s
			}
			if hi-lo < 1e-9 {
				break
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

var (
	Ease      = Bezier(0.25, 0.1, 0.25, 1)
	EaseIn    = Bezier(0.42, 0, 1, 1)
	EaseOut   = Bezier(0, 0, 0.58, 1)
	EaseInOut = Bezier(0.42, 0, 0.58, 1)
)

type Transition struct {
	Duration time.Duration
	// Easing defaults to Linear.
	Easing Easing
}

func (t Transition) progress(elapsed time.Duration) float64 {
	if t.Duration <= 0 || elapsed >= t.Duration {
		return 1
	}

	p := float64(elapsed) / float64(t.Duration)
	if t.Easing != nil {
		return t.Easing(p)
	}
	return p
}

type animation struct {
	from, to   any
	start      time.Time
	transition Transition
}

// Animator interpolates the props of one view towards their resolved values.
type Animator struct {
	running map[Key]*animation
}

// Step returns the style to display at now given the style currently shown
// and the newly resolved target. A prop whose target changes mid-flight
// restarts from the value currently shown. The bool reports whether any
// prop is still animating.
func (a *Animator) Step(shown, target *Computed, transitions map[Key]Transition, now time.Time) (*Computed, bool) {
	for k := range a.running {
		if _, ok := transitions[k]; !ok {
			delete(a.running, k)
		}
	}

	if shown == nil || len(transitions) == 0 {
		return target, len(a.running) > 0
	}

	out := target
	for k, t := range transitions {
		to := target.get(k)

		anim, ok := a.running[k]
		if !ok || !k.equal(anim.to, to) {
			from := shown.get(k)
			if k.equal(from, to) {
				delete(a.running, k)
				continue
			}

			anim = &animation{from: from, to: to, start: now, transition: t}
			if a.running == nil {
				a.running = make(map[Key]*animation)
			}
			a.running[k] = anim
		}

		p := anim.transition.progress(now.Sub(anim.start))
		if p >= 1 && now.Sub(anim.start) >= anim.transition.Duration {
			delete(a.running, k)
			continue
		}

		v, ok := k.lerp(anim.from, anim.to, p)
		if !ok {
			delete(a.running, k)
			continue
		}

		if out == target {
			out = target.clone()
		}
		out.values[k] = v
	}

	return out, len(a.running) > 0
}

// Running reports whether any prop is mid-transition.
func (a *Animator) Running() bool {
	return len(a.running) > 0
}
