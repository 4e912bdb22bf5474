package chart

import "math"

// tick step thresholds, sqrt(50), sqrt(10) and sqrt(2)
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// LinearScale maps a domain interval onto a pixel range by linear interpolation
type LinearScale struct {
	Domain [2]float64 `json:"domain"`
	Range  [2]float64 `json:"range"`
}

// BuildLinearScale returns the scale for [d0, d1] -> [r0, r1]
func BuildLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Degenerate reports whether the domain collapses to a single point
func (s LinearScale) Degenerate() bool { return s.Domain[0] == s.Domain[1] }

// Apply maps v into the range
// a degenerate domain maps every input to the range origin
func (s LinearScale) Apply(v float64) float64 {
	if s.Degenerate() {
		return s.Range[0]
	}
	return s.Range[0] + (v-s.Domain[0])/(s.Domain[1]-s.Domain[0])*(s.Range[1]-s.Range[0])
}

// Func returns Apply as a plain function value
func (s LinearScale) Func() func(float64) float64 { return s.Apply }

// Span returns the signed width of the range
func (s LinearScale) Span() float64 { return s.Range[1] - s.Range[0] }

// Ticks returns roughly count human friendly values inside the domain
// steps are 1, 2 or 5 times a power of ten
func (s LinearScale) Ticks(count int) []float64 {
	if count <= 0 {
		return nil
	}
	start, stop := s.Domain[0], s.Domain[1]
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	rel := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case rel >= e10:
		factor = 10
	case rel >= e5:
		factor = 5
	case rel >= e2:
		factor = 2
	}

	var out []float64
	if power >= 0 {
		inc := factor * math.Pow(10, power)
		lo, hi := math.Ceil(start/inc), math.Floor(stop/inc)
		for i := lo; i <= hi; i++ {
			out = append(out, i*inc)
		}
	} else {
		// divide by the inverse increment to keep 0.1 steps exact
		inv := math.Pow(10, -power) / factor
		lo, hi := math.Ceil(start*inv), math.Floor(stop*inv)
		for i := lo; i <= hi; i++ {
			out = append(out, i/inv)
		}
	}

	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
