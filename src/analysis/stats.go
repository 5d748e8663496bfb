package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/iafilius/CoevolutionPlot/src/results"
)

const (
	// WhiskerIQR is the reach of the whiskers in multiples of the interquartile range.
	WhiskerIQR = 1.5
	// notchFactor gives the ~95% confidence interval of the median (McGill et al.).
	notchFactor = 1.57
)

// BoxStats summarizes one box of the box plot.
type BoxStats struct {
	N         int       `json:"n" yaml:"n"`
	Mean      float64   `json:"mean" yaml:"mean"`
	Min       float64   `json:"min" yaml:"min"`
	Q1        float64   `json:"q1" yaml:"q1"`
	Median    float64   `json:"median" yaml:"median"`
	Q3        float64   `json:"q3" yaml:"q3"`
	Max       float64   `json:"max" yaml:"max"`
	IQR       float64   `json:"iqr" yaml:"iqr"`
	WhiskerLo float64   `json:"whisker_lo" yaml:"whisker_lo"`
	WhiskerHi float64   `json:"whisker_hi" yaml:"whisker_hi"`
	NotchLo   float64   `json:"notch_lo" yaml:"notch_lo"`
	NotchHi   float64   `json:"notch_hi" yaml:"notch_hi"`
	Fliers    []float64 `json:"fliers,omitempty" yaml:"fliers,omitempty"`
}

// ComputeBoxStats returns quartiles (linear interpolation), whiskers, notch bounds and outliers of vs.
func ComputeBoxStats(vs []float64) (BoxStats, error) {
	if len(vs) == 0 {
		return BoxStats{}, fmt.Errorf("box stats: %w", results.ErrEmptyInput)
	}
	s := append([]float64(nil), vs...)
	sort.Float64s(s)
	m, _ := mean(s)
	st := BoxStats{
		N:      len(s),
		Mean:   m,
		Min:    s[0],
		Max:    s[len(s)-1],
		Q1:     Percentile(s, 25),
		Median: Percentile(s, 50),
		Q3:     Percentile(s, 75),
	}
	st.IQR = st.Q3 - st.Q1
	half := notchFactor * st.IQR / math.Sqrt(float64(st.N))
	st.NotchLo = st.Median - half
	st.NotchHi = st.Median + half

	loFence := st.Q1 - WhiskerIQR*st.IQR
	hiFence := st.Q3 + WhiskerIQR*st.IQR
	st.WhiskerLo = st.Q1
	st.WhiskerHi = st.Q3
	for _, v := range s {
		if v >= loFence {
			st.WhiskerLo = math.Min(v, st.Q1)
			break
		}
	}
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] <= hiFence {
			st.WhiskerHi = math.Max(s[i], st.Q3)
			break
		}
	}
	for _, v := range s {
		if v < st.WhiskerLo || v > st.WhiskerHi {
			st.Fliers = append(st.Fliers, v)
		}
	}
	return st, nil
}

// Percentile returns the p-th percentile (0..100) of sorted using linear interpolation between closest ranks.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
