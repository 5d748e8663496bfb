package render

// point is a data-space coordinate.
type point struct {
	x, y float64
}

// window is the visible data rectangle of a panel.
type window struct {
	xmin, xmax, ymin, ymax float64
}

func (w window) contains(x, y float64) bool {
	return x >= w.xmin && x <= w.xmax && y >= w.ymin && y <= w.ymax
}

// clipPolyline cuts the polyline (xs[i], ys[i]) to w and returns the visible runs.
// Each run has at least two points.
func clipPolyline(xs, ys []float64, w window) [][]point {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	var runs [][]point
	var cur []point
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	for i := 0; i+1 < n; i++ {
		a := point{xs[i], ys[i]}
		b := point{xs[i+1], ys[i+1]}
		ca, cb, ok := clipSegment(a, b, w)
		if !ok {
			flush()
			continue
		}
		if len(cur) == 0 || cur[len(cur)-1] != ca {
			flush()
			cur = []point{ca}
		}
		cur = append(cur, cb)
		if cb != b {
			flush()
		}
	}
	flush()
	return runs
}

// clipSegment clips a-b to w (Liang-Barsky). Endpoints inside w are returned unchanged.
func clipSegment(a, b point, w window) (point, point, bool) {
	dx := b.x - a.x
	dy := b.y - a.y
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.x - w.xmin, w.xmax - a.x, a.y - w.ymin, w.ymax - a.y}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return a, b, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = point{a.x + t0*dx, a.y + t0*dy}
	}
	if t1 < 1 {
		cb = point{a.x + t1*dx, a.y + t1*dy}
	}
	return ca, cb, true
}
