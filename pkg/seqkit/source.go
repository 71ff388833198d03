package seqkit

import (
	"bufio"

	"go.llib.dev/traverse/port/sequence"
)

var _ sequence.Contiguous[sequence.Index, any] = (*SliceCollection[any])(nil)
var _ sequence.Permutable[sequence.Index, any] = (*SliceCollection[any])(nil)
var _ sequence.Reversible[any] = (*SliceCollection[any])(nil)
var _ sequence.RandomAccess[sequence.Index, int] = IntRangeCollection{}
var _ sequence.Reversible[int] = IntRangeCollection{}

// Slice exposes a Go slice as a contiguous, permutable collection
// with Index positions. The collection aliases the slice's backing array,
// so Swap based algorithms mutate the original elements.
func Slice[V any](vs []V) *SliceCollection[V] {
	return &SliceCollection[V]{vs: vs}
}

// SliceCollection is the archetypal Contiguous collection.
type SliceCollection[V any] struct{ vs []V }

func (s *SliceCollection[V]) Begin() sequence.Index { return 0 }

func (s *SliceCollection[V]) End() sequence.Index { return sequence.Index(len(s.vs)) }

func (s *SliceCollection[V]) Advance(p sequence.Index) sequence.Index { return p + 1 }

func (s *SliceCollection[V]) Retreat(p sequence.Index) sequence.Index { return p - 1 }

func (s *SliceCollection[V]) ReadUnchecked(p sequence.Index) V { return s.vs[p] }

func (s *SliceCollection[V]) Swap(a, b sequence.Index) {
	s.vs[a], s.vs[b] = s.vs[b], s.vs[a]
}

func (s *SliceCollection[V]) Distance(from, to sequence.Index) int { return int(to - from) }

func (s *SliceCollection[V]) Offset(p sequence.Index, n int) sequence.Index {
	return p + sequence.Index(n)
}

func (s *SliceCollection[V]) View() []V { return s.vs }

func (s *SliceCollection[V]) Iterate() sequence.Context[V] {
	return sequence.Iterate[sequence.Index, V](s)
}

func (s *SliceCollection[V]) IterateBackward() sequence.Context[V] {
	return sequence.IterateBackward[sequence.Index, V](s)
}

// IntRange is a random access collection of the integers of [min, max],
// without any backing storage.
func IntRange(min, max int) IntRangeCollection {
	if max < min {
		max = min - 1
	}
	return IntRangeCollection{min: min, max: max}
}

// IntRangeCollection is a storage-free RandomAccess collection.
type IntRangeCollection struct{ min, max int }

func (r IntRangeCollection) Begin() sequence.Index { return 0 }

func (r IntRangeCollection) End() sequence.Index { return sequence.Index(r.max - r.min + 1) }

func (r IntRangeCollection) Advance(p sequence.Index) sequence.Index { return p + 1 }

func (r IntRangeCollection) Retreat(p sequence.Index) sequence.Index { return p - 1 }

func (r IntRangeCollection) ReadUnchecked(p sequence.Index) int { return r.min + int(p) }

func (r IntRangeCollection) Distance(from, to sequence.Index) int { return int(to - from) }

func (r IntRangeCollection) Offset(p sequence.Index, n int) sequence.Index {
	return p + sequence.Index(n)
}

func (r IntRangeCollection) Iterate() sequence.Context[int] {
	return sequence.Iterate[sequence.Index, int](r)
}

func (r IntRangeCollection) IterateBackward() sequence.Context[int] {
	return sequence.IterateBackward[sequence.Index, int](r)
}

// Empty returns an iterable without elements,
// to represent the nil result with the null object pattern.
func Empty[V any]() sequence.Reversible[V] {
	return emptyIterable[V]{}
}

type emptyIterable[V any] struct{}

func (emptyIterable[V]) Iterate() sequence.Context[V] { return emptyContext[V]{} }

func (emptyIterable[V]) IterateBackward() sequence.Context[V] { return emptyContext[V]{} }

type emptyContext[V any] struct{}

func (emptyContext[V]) RunWhile(func(V) bool) sequence.Status { return sequence.Complete }

// Chan exposes a receive channel as a single-pass streaming iterable.
// Traversal ends when the channel is closed;
// over a channel that is never closed the source is infinite.
func Chan[V any](ch <-chan V) sequence.Iterable[V] {
	return sequence.FromPullFunc(func() (V, bool) {
		v, ok := <-ch
		return v, ok
	})
}

// Scan exposes a bufio.Scanner as a single-pass iterable of its tokens,
// the textbook source where reading and advancing are inseparable.
func Scan[T string | []byte](s *bufio.Scanner) sequence.Iterable[T] {
	return sequence.FromPullFunc(func() (T, bool) {
		var zero T
		if !s.Scan() {
			return zero, false
		}
		var iface interface{} = zero
		var v T
		switch iface.(type) {
		case string:
			v = T(s.Text())
		case []byte:
			v = T(s.Bytes())
		}
		return v, true
	})
}
