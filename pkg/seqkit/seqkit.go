// Package seqkit provides terminal algorithms, lazy adaptors
// and concrete sources for the sequence traversal protocol.
//
// Terminal algorithms are expressed only against the Context and Collection
// primitives of port/sequence, so they work uniformly over streaming
// single-pass sources and multi-pass collections.
package seqkit

import (
	"go.llib.dev/traverse/port/sequence"
)

// ForEach applies fn to every element of i, in traversal order.
func ForEach[V any](i sequence.Iterable[V], fn func(V)) {
	i.Iterate().RunWhile(func(v V) bool {
		fn(v)
		return true
	})
}

// Reduce folds i into an accumulator through fn, starting from initial.
// There is no early exit; the fold runs to exhaustion,
// thus it must not be used over an infinite source.
func Reduce[R, V any](i sequence.Iterable[V], initial R, fn func(R, V) R) R {
	var acc = initial
	ForEach(i, func(v V) {
		acc = fn(acc, v)
	})
	return acc
}

// Equal reports whether a and b yield the same elements in the same order.
func Equal[V comparable](a, b sequence.Iterable[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc compares two sources in lock-step, one paired pull per round.
// Mismatched emptiness means unequal, both empty means equal,
// both present compares the elements and continues.
// This is the canonical shape for any multi-source single-pass algorithm,
// since a single RunWhile can drive only one source.
func EqualFunc[A, B any](a sequence.Iterable[A], b sequence.Iterable[B], eq func(A, B) bool) bool {
	var (
		actx = a.Iterate()
		bctx = b.Iterate()
	)
	for {
		av, aok := sequence.Next(actx)
		bv, bok := sequence.Next(bctx)
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		if !eq(av, bv) {
			return false
		}
	}
}

// Collect gathers every element of i into a slice.
func Collect[V any](i sequence.Iterable[V]) []V {
	if i == nil {
		return nil
	}
	var vs = make([]V, 0)
	ForEach(i, func(v V) {
		vs = append(vs, v)
	})
	return vs
}

// Count iterates over i and counts the total iteration number.
func Count[V any](i sequence.Iterable[V]) int {
	var total int
	ForEach(i, func(V) {
		total++
	})
	return total
}

// First consumes and returns the first element of i.
func First[V any](i sequence.Iterable[V]) (V, bool) {
	return sequence.Next(i.Iterate())
}

// Last returns the final element of i, running it to exhaustion.
func Last[V any](i sequence.Iterable[V]) (V, bool) {
	var (
		last V
		ok   bool
	)
	ForEach(i, func(v V) {
		last = v
		ok = true
	})
	return last, ok
}

// ReverseInPlace reverses the element order of a permutable random access
// collection by swapping readable positions pairwise from the two ends.
func ReverseInPlace[P sequence.Position[P], V any, C interface {
	sequence.Permutable[P, V]
	sequence.RandomAccess[P, V]
}](col C) {
	var (
		lo = col.Begin()
		hi = col.End()
	)
	for 2 <= col.Distance(lo, hi) {
		hi = col.Retreat(hi)
		col.Swap(lo, hi)
		lo = col.Advance(lo)
	}
}
