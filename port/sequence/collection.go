package sequence

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

// Collection is the finite, multi-pass refinement of Iterable.
//
// A Collection exposes ordered Positions and reads that are pure functions of
// (collection state, position), which is what makes repeated independent
// traversal safe: many Positions and many independently obtained contexts may
// coexist over the same backing state.
//
// For any valid position p of a collection: Begin <= p <= End,
// and p is readable exactly when p < End.
// End is a valid position but never a readable one.
type Collection[P Position[P], V any] interface {
	Iterable[V]
	// Begin returns the position of the first element,
	// which equals End when the collection is empty.
	Begin() P
	// End returns the past-the-end position.
	End() P
	// Advance returns the position following p in amortized O(1).
	// Advancing End or an invalid position is a caller contract breach.
	Advance(p P) P
	// ReadUnchecked returns the element at p without validating readability.
	// It exists for call sites that already established readability,
	// so a checked caller pays for exactly one validation.
	// It must never be the default entry point.
	ReadUnchecked(p P) V
}

// Permutable is a Collection that can exchange the elements of two readable positions.
type Permutable[P Position[P], V any] interface {
	Collection[P, V]
	Swap(a, b P)
}

// Bidirectional is a Collection that can also step positions backwards.
type Bidirectional[P Position[P], V any] interface {
	Collection[P, V]
	// Retreat returns the position preceding p, symmetric to Advance.
	// Retreating Begin is a caller contract breach.
	Retreat(p P) P
}

// RandomAccess is a Bidirectional collection with constant time position arithmetic.
type RandomAccess[P Position[P], V any] interface {
	Bidirectional[P, V]
	// Distance returns the signed number of Advance steps from one position
	// to the other in O(1); negative when "to" is located before "from".
	Distance(from, to P) int
	// Offset returns p moved by n Advance steps (or -n Retreat steps) in O(1).
	// An out of range offset is memory safe but unspecified in timing:
	// it may fault immediately or defer the fault to the next checked read,
	// it never produces a silently wrong readable result.
	Offset(p P, n int) P
}

// Contiguous is a RandomAccess collection backed by flat storage,
// which it can expose as a length-tagged view.
type Contiguous[P Position[P], V any] interface {
	RandomAccess[P, V]
	View() []V
}

const ErrOutOfBounds errorkit.Error = "sequence: position out of bounds"

// IsValid reports whether p denotes a location of col, including End.
func IsValid[P Position[P], V any](col Collection[P, V], p P) bool {
	return col.Begin().Compare(p) <= 0 && p.Compare(col.End()) <= 0
}

// IsReadable reports whether p denotes an element of col.
func IsReadable[P Position[P], V any](col Collection[P, V], p P) bool {
	return col.Begin().Compare(p) <= 0 && p.Compare(col.End()) < 0
}

// ReadChecked validates p then reads it.
// On a bounds violation it fails fast with a panic that carries an error
// wrapping ErrOutOfBounds; the fault aborts the current operation only
// and never corrupts the collection.
func ReadChecked[P Position[P], V any](col Collection[P, V], p P) V {
	if !IsReadable(col, p) {
		panic(ErrOutOfBounds.F("position %v is outside of [%v, %v)", p, col.Begin(), col.End()))
	}
	return col.ReadUnchecked(p)
}

// TryRead reads p when it is readable, and reports emptiness instead of faulting.
func TryRead[P Position[P], V any](col Collection[P, V], p P) (V, bool) {
	if !IsReadable(col, p) {
		var zero V
		return zero, false
	}
	return col.ReadUnchecked(p), true
}
