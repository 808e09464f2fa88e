package hll

import "errors"

// ErrInvalidPrecision is returned by NewSketch when p falls outside the
// supported range [4, 18] (§7: InvalidPrecision).
var ErrInvalidPrecision = errors.New("hll: precision must be in [4, 18]")

// ErrPrecisionMismatch is returned by Merge when the receiver and its
// operand were constructed with different precisions (§7: PrecisionMismatch).
var ErrPrecisionMismatch = errors.New("hll: sketches must share a precision to merge")

type mode uint8

const (
	sparseMode mode = iota
	denseMode
)

// Sketch is a HyperLogLog++ cardinality estimator (§3). It holds exactly
// one of a sparse or a dense representation of the keys it has observed,
// and promotes itself from sparse to dense once the sparse set grows past
// m/4 entries (§4.4).
//
// A Sketch is a plain mutable value, not safe for concurrent use: all
// operations are synchronous and never block (§5). The zero Sketch is not
// usable; construct one with NewSketch.
type Sketch struct {
	p     uint
	m     uint64
	mode  mode
	sp    *sparseSet
	dense denseRegisters
	mixer Mixer
}

// NewSketch constructs a Sketch with dense precision p, which must be in
// [4, 18]. When initiallySparse is true the sketch starts in the compact
// sparse representation and promotes to dense once it overflows; when
// false it starts dense immediately, using m = 2^p bytes up front. A nil
// mixer defaults to MurmurFinalizer.
func NewSketch(p uint, initiallySparse bool, mixer Mixer) (*Sketch, error) {
	if p < 4 || p > 18 {
		return nil, ErrInvalidPrecision
	}
	if mixer == nil {
		mixer = MurmurFinalizer
	}
	s := &Sketch{
		p:     p,
		m:     uint64(1) << p,
		mixer: mixer,
	}
	if initiallySparse {
		s.mode = sparseMode
		s.sp = newSparseSet()
	} else {
		s.mode = denseMode
		s.dense = newDenseRegisters(s.m)
	}
	return s, nil
}

// Precision returns the dense precision p the sketch was constructed with.
func (s *Sketch) Precision() uint { return s.p }

// IsSparse reports whether the sketch currently holds its sparse
// representation.
func (s *Sketch) IsSparse() bool { return s.mode == sparseMode }

// Len reports the number of entries in the sparse set, or -1 while dense.
// It exists mainly for tests exercising the promotion threshold.
func (s *Sketch) Len() int {
	if s.mode != sparseMode {
		return -1
	}
	return s.sp.Len()
}

// Add incorporates key into the sketch (§4.4): mix, then either insert into
// the sparse set or update the dense register it indexes.
func (s *Sketch) Add(key uint64) {
	h := s.mixer(key)
	switch s.mode {
	case sparseMode:
		s.sp.insert(encodeHash(h, s.p))
		if uint64(s.sp.Len()) > s.m/4 {
			s.promote()
		}
	case denseMode:
		idx := indexOf(h, s.p)
		r := rankOf(h, s.p)
		s.dense.updateMax(idx, r)
	}
}

// AddMany adds every key in keys, in order (§6: "add_many(keys)").
func (s *Sketch) AddMany(keys []uint64) {
	for _, k := range keys {
		s.Add(k)
	}
}

// promote converts a sparse sketch to dense by replaying every sparse entry
// as a max-update, then discards the sparse set (§4.4).
func (s *Sketch) promote() {
	d := newDenseRegisters(s.m)
	s.sp.forEach(func(encoded uint32) {
		idx, r := decodeHash(encoded, s.p)
		d.updateMax(uint64(idx), r)
	})
	s.dense = d
	s.sp = nil
	s.mode = denseMode
}

// Merge folds other into s (§4.6). Both sketches must share a precision;
// if they don't, s is left unchanged and ErrPrecisionMismatch is returned.
// other is read-only here; unlike some reference implementations, Merge
// never mutates its argument.
func (s *Sketch) Merge(other *Sketch) error {
	if s.p != other.p {
		return ErrPrecisionMismatch
	}
	switch {
	case s.mode == sparseMode && other.mode == sparseMode:
		s.mergeSparseSparse(other)
	case s.mode == denseMode && other.mode == sparseMode:
		other.sp.forEach(func(encoded uint32) {
			idx, r := decodeHash(encoded, s.p)
			s.dense.updateMax(uint64(idx), r)
		})
	case s.mode == sparseMode && other.mode == denseMode:
		s.promote()
		s.dense.mergeMax(other.dense)
	default: // both dense
		s.dense.mergeMax(other.dense)
	}
	return nil
}

// mergeSparseSparse implements §4.6's both-sparse case. It promotes to
// dense whenever the sum of the two set sizes exceeds m, even though the
// true size after deduplication may be smaller — the reference algorithm
// this spec follows does the same and acknowledges the promotion can be
// premature; that behavior is preserved here rather than fixed.
func (s *Sketch) mergeSparseSparse(other *Sketch) {
	if uint64(s.sp.Len()+other.sp.Len()) > s.m {
		s.promote()
		other.sp.forEach(func(encoded uint32) {
			idx, r := decodeHash(encoded, s.p)
			s.dense.updateMax(uint64(idx), r)
		})
		return
	}
	s.sp.merge(other.sp)
}

// Reset returns the sketch to its initial, empty, sparse state (§4.7),
// regardless of how it was originally constructed.
func (s *Sketch) Reset() {
	s.mode = sparseMode
	s.sp = newSparseSet()
	s.dense = nil
}
