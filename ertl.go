package hll

import "math"

// ErtlCardinality returns Otmar Ertl's 2017 improved estimator (§4.5): an
// alternative to Cardinality that replaces the empirical bias table and
// linear-counting threshold switch with closed-form sigma/tau corrections
// for empty and saturated registers.
func (s *Sketch) ErtlCardinality() uint64 {
	if s.mode == sparseMode {
		return s.ertlSparse()
	}
	return s.ertlDense()
}

func (s *Sketch) ertlDense() uint64 {
	q := 64 - s.p
	hist := make([]float64, q+2)
	for i := uint64(0); i < s.m; i++ {
		r := uint(s.dense.get(i))
		assertf(r <= q+1, "ertl: register rank %d exceeds q+1=%d", r, q+1)
		hist[r]++
	}
	return ertlEstimate(hist, s.m, q)
}

// ertlSparse builds the Ertl histogram from the sparse set directly
// (§4.5: "start with C[0] = m and for every encoded word decode its rank r
// and do C[r] += 1, C[0] -= 1"), at the sparse precision pPrime rather than
// the dense precision p.
func (s *Sketch) ertlSparse() uint64 {
	q := uint(64 - pPrimeBits)
	m := mPrime
	hist := make([]float64, q+2)
	hist[0] = float64(m)
	s.sp.forEach(func(encoded uint32) {
		_, r := decodeHash(encoded, s.p)
		// decodeHash recovers the rank at dense precision p; in the rare
		// case that exceeds this pPrime-scaled histogram's top bucket, it
		// belongs in the saturated bucket rather than out of bounds.
		ri := uint(r)
		if ri > q+1 {
			ri = q + 1
		}
		hist[ri]++
		hist[0]--
	})
	return ertlEstimate(hist, m, q)
}

// ertlEstimate implements §4.5's Ertl formula over a register histogram of
// length q+2: a tau correction for the saturated bucket, a weighted fold
// over the interior buckets, and a sigma correction for empty registers.
func ertlEstimate(hist []float64, m uint64, q uint) uint64 {
	total := 0.0
	for _, c := range hist {
		total += c
	}
	assertf(total == float64(m), "ertl: histogram sums to %v, want %d", total, m)

	d := float64(m) * tau(1-hist[q+1]/float64(m))
	for k := int(q); k >= 1; k-- {
		d = (d + hist[k]) * 0.5
	}
	d += float64(m) * sigma(hist[0]/float64(m))

	alphaInfM2 := (float64(m) / (2 * math.Ln2)) * float64(m)
	return roundUint64(alphaInfM2 / d)
}

// sigma is Ertl's zero-register correction (§4.5): a fixed-point sum that
// diverges to +Inf as x -> 1, matching the all-empty-registers boundary.
func sigma(x float64) float64 {
	assertf(x >= 0 && x <= 1, "sigma: x=%v out of [0,1]", x)
	if x == 1 {
		return math.Inf(1)
	}
	sig := x
	y := 1.0
	for {
		x *= x
		next := sig + x*y
		y += y
		if next == sig {
			return next
		}
		sig = next
	}
}

// tau is Ertl's saturated-register correction (§4.5), zero at both
// boundaries.
func tau(x float64) float64 {
	assertf(x >= 0 && x <= 1, "tau: x=%v out of [0,1]", x)
	if x == 0 || x == 1 {
		return 0
	}
	y := 1.0
	t := 1 - x
	for {
		x = math.Sqrt(x)
		y *= 0.5
		diff := 1 - x
		next := t - diff*diff*y
		if next == t {
			return next / 3
		}
		t = next
	}
}
