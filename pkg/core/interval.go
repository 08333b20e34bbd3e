package core

import "math"

// Interval is a range of real numbers from Start to End
type Interval struct {
	Start float64
	End   float64
}

// NewInterval creates a new interval
func NewInterval(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// Contains reports whether start <= v <= end
func (i Interval) Contains(v float64) bool {
	return i.Start <= v && v <= i.End
}

// Surrounds reports whether start < v < end
func (i Interval) Surrounds(v float64) bool {
	return i.Start < v && v < i.End
}

// Clamp saturates v into [start, end]
func (i Interval) Clamp(v float64) float64 {
	return math.Min(math.Max(v, i.Start), i.End)
}

// Size returns end - start
func (i Interval) Size() float64 {
	return i.End - i.Start
}
