// Package hll implements HyperLogLog++, the distinct-count (cardinality)
// estimation algorithm from "HyperLogLog in Practice: Algorithmic
// Engineering of a State of The Art Cardinality Estimation Algorithm" by
// Heule, Nunkesser and Hall, with Otmar Ertl's 2017 sigma/tau estimator
// available as an alternative to the paper's bias-corrected raw estimate.
//
// Given a stream of 64-bit keys, a Sketch maintains a small, fixed-size
// summary from which a cardinality estimate can be read at any time, and
// two sketches of equal precision can be merged losslessly. A Sketch starts
// in a compact sparse representation and promotes itself to a dense array
// of registers once its sparse set grows past a quarter of the dense
// register count.
//
// This is a translation of the algorithms in the Google paper and in Ertl's
// follow-up, not a port of any one reference implementation's pseudocode;
// where a detail is underspecified (merge across sparse/dense operand
// combinations, for one) we've tried to stay true to the intent described
// in the surrounding text rather than invent something novel.
//
// This package does not hash arbitrary keys itself: callers supply a pure
// 64-bit-to-64-bit mixer (two are provided, MurmurFinalizer and WangMixer)
// and are expected to have already reduced their domain values to a
// uint64, typically via their own choice of hash function.
//
// The HyperLogLog++ paper is available at
// http://static.googleusercontent.com/media/research.google.com/en/us/pubs/archive/40671.pdf
// Ertl's paper is at https://arxiv.org/abs/1702.01284
package hll
