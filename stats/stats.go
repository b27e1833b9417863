// Package stats tracks running statistics over the activations recomputed
// during a session.
package stats

import (
	"fmt"
	"html/template"
	"math"
)

// EMA is an exponential moving average over a fixed window size.
type EMA struct {
	Window float64
	value  float64
	primed bool
}

func (e *EMA) Add(val float64) float64 {
	if !e.primed {
		e.value, e.primed = val, true
		return val
	}
	k := 2.0 / (e.Window + 1.0)
	e.value = val*k + e.value*(1-k)
	return e.value
}

func (e *EMA) Value() float64 { return e.value }

// Average keeps a running mean and standard deviation using Welford's
// recurrence, as per http://www.johndcook.com/blog/standard_deviation/
type Average struct {
	Count, Mean float64
	Var, StdDev float64
	oldM, oldV  float64
}

func (s *Average) Add(x float64) {
	s.Count++
	if s.Count == 1 {
		s.oldM, s.Mean = x, x
		s.oldV = 0
		return
	}
	s.Mean = s.oldM + (x-s.oldM)/s.Count
	s.Var = s.oldV + (x-s.oldM)*(x-s.Mean)
	s.oldM, s.oldV = s.Mean, s.Var
	if s.Count > 1 {
		s.StdDev = math.Sqrt(s.Var / (s.Count - 1))
	}
}

func (s *Average) HTML() template.HTML {
	var text string
	if s.StdDev < 0.005 {
		text = fmt.Sprintf("%.2f", s.Mean)
	} else {
		text = fmt.Sprintf("%.2f&PlusMinus;%.2f", s.Mean, s.StdDev)
	}
	return template.HTML(text)
}

// History is a bounded series of samples feeding the history plot. Once full
// the oldest samples are dropped.
type History struct {
	max   int
	start int
	vals  []Sample
}

type Sample struct {
	Step  int
	Value float64
}

func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{max: max}
}

func (h *History) Add(step int, val float64) {
	if len(h.vals) < h.max {
		h.vals = append(h.vals, Sample{step, val})
		return
	}
	h.vals[h.start] = Sample{step, val}
	h.start = (h.start + 1) % h.max
}

func (h *History) Len() int { return len(h.vals) }

// Samples returns the series oldest first.
func (h *History) Samples() []Sample {
	out := make([]Sample, 0, len(h.vals))
	out = append(out, h.vals[h.start:]...)
	out = append(out, h.vals[:h.start]...)
	return out
}
