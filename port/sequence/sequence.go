// Package sequence defines the traversal protocol of the library.
//
// # Summary
//
// The protocol unifies two traversal styles that are otherwise incompatible.
// Single-pass streaming sources, where reading and advancing are inseparable,
// are covered by the Iterable capability and its push-style iteration Context.
// Multi-pass sources, where stable comparable locations must support repeated
// independent traversal, refine Iterable into the Collection protocol,
// whose reads are pure functions of (collection state, position).
//
// What kind of source a type is gets discovered structurally,
// by the operations the type implements (Iterable, Collection, Permutable,
// Bidirectional, RandomAccess, Contiguous), not through a declared hierarchy.
//
// # Exclusivity
//
// A Context borrows its source for its whole lifetime.
// While a context over a single-pass source is live,
// the source must not be mutated or accessed through any other handle.
// Violating this is a caller-discipline contract breach and is not runtime detected.
// Collections relax the rule: any number of Positions and independently obtained
// contexts may coexist over the same backing state.
package sequence

// Status reports how a Context.RunWhile call ended.
type Status int

const (
	// Incomplete means the traversal stopped because the predicate signalled stop.
	Incomplete Status = iota
	// Complete means the traversal stopped because the source ran out of elements.
	Complete
)

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	default:
		return "invalid"
	}
}

// Context is the engine of internal iteration over one borrowed traversal session.
//
// Context implementations are stateful and must not be copied;
// share a single context only through its pointer, from a single goroutine.
type Context[V any] interface {
	// RunWhile feeds the remaining elements to pred in traversal order.
	// It stops the instant pred returns false, having consumed that element,
	// and reports Incomplete; on exhaustion it reports Complete.
	//
	// RunWhile is resumable: calling it again continues at the first
	// element the previous call did not consume.
	// Over an infinite source, RunWhile returns only when pred signals stop.
	RunWhile(pred func(V) bool) Status
}

// Iterable is the capability of producing an iteration Context.
//
// An Iterable may be infinite, and by default it carries a single-pass contract:
// obtaining more than one context over the same single-pass source is a contract breach.
type Iterable[V any] interface {
	Iterate() Context[V]
}

// Reversible is an Iterable that can also traverse from its end towards its begin.
type Reversible[V any] interface {
	Iterable[V]
	IterateBackward() Context[V]
}

// Step performs exactly one unit of work on the context:
// it consumes the next element, applies transform to it,
// and reports whether an element remained at all.
func Step[V, R any](c Context[V], transform func(V) R) (R, bool) {
	var (
		out R
		ok  bool
	)
	c.RunWhile(func(v V) bool {
		out = transform(v)
		ok = true
		return false
	})
	return out, ok
}

// StepVoid is Step for transforms without a result,
// reporting only whether an element existed.
func StepVoid[V any](c Context[V], do func(V)) bool {
	_, ok := Step(c, func(v V) struct{} {
		do(v)
		return struct{}{}
	})
	return ok
}

// Next consumes and returns the next element of the context.
// It is Step specialised to the identity transform, the minimal pull primitive.
func Next[V any](c Context[V]) (V, bool) {
	return Step(c, func(v V) V { return v })
}

// noCopy makes go vet's copylocks check flag value copies of context types.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
