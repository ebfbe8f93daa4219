package render

import "math"

type circle struct {
	X, Y, R float64
}

// layout places one circle per slot with area proportional to the set size
// and center distances chosen so each pairwise lens area matches the
// pairwise overlap. Three-set layouts are exact per pair only when the
// distances form a triangle; otherwise the third circle is placed on the axis.
func layout(req *Request) []circle {
	n := len(req.LabeledSets)
	circles := make([]circle, n)
	for i, ls := range req.LabeledSets {
		circles[i].R = math.Sqrt(float64(ls.Count) / math.Pi)
	}

	dist := func(i, j int) float64 {
		return solveDistance(circles[i].R, circles[j].R, float64(req.pairOverlap(i, j)))
	}

	dAB := dist(0, 1)
	circles[1].X = dAB
	if n < 3 {
		return circles
	}

	dAC, dBC := dist(0, 2), dist(1, 2)
	if dAB < 1e-9 {
		circles[2].X = dAC
		return circles
	}
	x := (dAC*dAC - dBC*dBC + dAB*dAB) / (2 * dAB)
	circles[2].X = x
	circles[2].Y = math.Sqrt(math.Max(0, dAC*dAC-x*x))
	return circles
}

// lensArea is the intersection area of two circles with center distance d
func lensArea(r1, r2, d float64) float64 {
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		r := math.Min(r1, r2)
		return math.Pi * r * r
	}
	a1 := r1 * r1 * math.Acos((d*d+r1*r1-r2*r2)/(2*d*r1))
	a2 := r2 * r2 * math.Acos((d*d+r2*r2-r1*r1)/(2*d*r2))
	k := (-d + r1 + r2) * (d + r1 - r2) * (d - r1 + r2) * (d + r1 + r2)
	return a1 + a2 - 0.5*math.Sqrt(math.Max(0, k))
}

// solveDistance finds the center distance giving the requested lens area.
// Lens area decreases monotonically in d, so bisection converges.
func solveDistance(r1, r2, overlap float64) float64 {
	lo, hi := math.Abs(r1-r2), r1+r2
	if overlap <= 0 {
		// leave a visible gap between disjoint sets
		return hi * 1.05
	}
	if overlap >= lensArea(r1, r2, lo) {
		return lo
	}
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if lensArea(r1, r2, mid) > overlap {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
