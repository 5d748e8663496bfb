package render

import (
	"reflect"
	"testing"
)

func tickValues(t *testing.T, min, max float64, n int) ([]float64, []string) {
	t.Helper()
	var vs []float64
	var ls []string
	for _, tk := range axisTicks(min, max, n) {
		vs = append(vs, tk.Value)
		ls = append(ls, tk.Label)
	}
	return vs, ls
}

func TestAxisTicks_FixedRanges(t *testing.T) {
	vs, ls := tickValues(t, 0, 500, 6)
	if !reflect.DeepEqual(vs, []float64{0, 100, 200, 300, 400, 500}) {
		t.Fatalf("x ticks %v", vs)
	}
	if ls[0] != "0" || ls[5] != "500" {
		t.Fatalf("x labels %v", ls)
	}
	vs, ls = tickValues(t, 60, 100, 9)
	if len(vs) != 9 || vs[0] != 60 || vs[8] != 100 || ls[1] != "65" {
		t.Fatalf("y ticks %v %v", vs, ls)
	}
}

func TestAxisTicks_PadsBounds(t *testing.T) {
	vs, ls := tickValues(t, 0.3, 9.7, 5)
	if vs[0] != 0.3 || ls[0] != "" || vs[len(vs)-1] != 9.7 || ls[len(ls)-1] != "" {
		t.Fatalf("bounds not padded: %v %v", vs, ls)
	}
	for i := 1; i < len(vs); i++ {
		if vs[i] <= vs[i-1] {
			t.Fatalf("ticks not increasing: %v", vs)
		}
	}
}

func TestGridLinesSkipUnlabeled(t *testing.T) {
	gl := gridLines(axisTicks(0.5, 3.5, 4))
	for _, g := range gl {
		if g.Value == 0.5 || g.Value == 3.5 {
			t.Fatalf("grid line on unlabeled bound tick %v", g.Value)
		}
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{0: "0", 60: "60", 12.5: "12.5", 2.5: "2.50"}
	for in, want := range cases {
		if got := formatTick(in); got != want {
			t.Fatalf("formatTick(%v)=%q want %q", in, got, want)
		}
	}
}

func TestMarkIndices(t *testing.T) {
	if got := MarkIndices(45, 20); !reflect.DeepEqual(got, []int{0, 20, 40}) {
		t.Fatalf("MarkIndices(45,20)=%v", got)
	}
	if got := MarkIndices(20, 20); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("MarkIndices(20,20)=%v", got)
	}
	if MarkIndices(0, 20) != nil || MarkIndices(5, 0) != nil {
		t.Fatalf("degenerate inputs must yield nil")
	}
}

func TestMarkerCycle(t *testing.T) {
	seen := map[Marker]bool{}
	for i := 0; i < 5; i++ {
		seen[MarkerFor(i)] = true
	}
	if len(seen) != 5 {
		t.Fatalf("first five series must get distinct markers")
	}
	if MarkerFor(5) != MarkerFor(0) || MarkerFor(7).String() != "square" {
		t.Fatalf("marker cycle must repeat after five")
	}
}

func TestClipPolyline(t *testing.T) {
	w := window{xmin: 0, xmax: 10, ymin: 0, ymax: 10}

	runs := clipPolyline([]float64{1, 2, 3}, []float64{1, 2, 3}, w)
	if len(runs) != 1 || !reflect.DeepEqual(runs[0], []point{{1, 1}, {2, 2}, {3, 3}}) {
		t.Fatalf("inside polyline changed: %v", runs)
	}

	// leaves through the top and comes back
	runs = clipPolyline([]float64{0, 2, 4, 6}, []float64{8, 12, 12, 8}, w)
	if len(runs) != 2 {
		t.Fatalf("expected two runs, got %v", runs)
	}
	if runs[0][0] != (point{0, 8}) || runs[0][1] != (point{1, 10}) {
		t.Fatalf("first run %v", runs[0])
	}
	if runs[1][0] != (point{5, 10}) || runs[1][1] != (point{6, 8}) {
		t.Fatalf("second run %v", runs[1])
	}

	if runs := clipPolyline([]float64{20, 30}, []float64{5, 5}, w); len(runs) != 0 {
		t.Fatalf("outside polyline must vanish: %v", runs)
	}
	if runs := clipPolyline([]float64{5}, []float64{5}, w); len(runs) != 0 {
		t.Fatalf("single point has no segment: %v", runs)
	}
}
