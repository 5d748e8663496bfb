package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// niceTicks generates about n tick marks covering [min, max] using 1, 2, 2.5, 5 steps.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max < min {
		min, max = max, min
	}
	if max == min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Ceil(min/bestStep-1e-9) * bestStep
	ticks := []chart.Tick{}
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > max+bestStep*1e-9 {
			break
		}
		if math.Abs(v) < bestStep*1e-9 {
			v = 0
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.Abs(v-math.Round(v)) < 1e-9 {
		return fmt.Sprintf("%.0f", math.Round(v))
	}
	if math.Abs(v) >= 10 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// axisTicks returns nice ticks for [min, max]. go-chart derives the axis range from the outermost
// ticks, so unlabeled ticks are added at the bounds when the nice ones fall short of them.
func axisTicks(min, max float64, n int) []chart.Tick {
	if max < min {
		min, max = max, min
	}
	ticks := niceTicks(min, max, n)
	if len(ticks) == 0 || ticks[0].Value > min {
		ticks = append([]chart.Tick{{Value: min, Label: ""}}, ticks...)
	}
	if ticks[len(ticks)-1].Value < max {
		ticks = append(ticks, chart.Tick{Value: max, Label: ""})
	}
	return ticks
}

// gridLines places one major grid line on every labeled tick.
func gridLines(ticks []chart.Tick) []chart.GridLine {
	out := make([]chart.GridLine, 0, len(ticks))
	for _, t := range ticks {
		if t.Label == "" {
			continue
		}
		out = append(out, chart.GridLine{Value: t.Value})
	}
	return out
}
