package sequence

// Iterate returns a Context that walks col from Begin towards End
// through Advance and ReadUnchecked.
// Every Collection is Iterable through this engine;
// implementations delegate their Iterate method here.
func Iterate[P Position[P], V any](col Collection[P, V]) Context[V] {
	return &forwardContext[P, V]{col: col, pos: col.Begin()}
}

// IterateBackward returns a Context that walks col from End towards Begin.
// The engine retreats before it reads,
// so resuming continues at the preceding unconsumed element.
func IterateBackward[P Position[P], V any](col Bidirectional[P, V]) Context[V] {
	return &backwardContext[P, V]{col: col, pos: col.End()}
}

type forwardContext[P Position[P], V any] struct {
	_   noCopy
	col Collection[P, V]
	pos P
}

func (c *forwardContext[P, V]) RunWhile(pred func(V) bool) Status {
	for c.pos.Compare(c.col.End()) < 0 {
		v := c.col.ReadUnchecked(c.pos)
		c.pos = c.col.Advance(c.pos)
		if !pred(v) {
			return Incomplete
		}
	}
	return Complete
}

type backwardContext[P Position[P], V any] struct {
	_   noCopy
	col Bidirectional[P, V]
	pos P
}

func (c *backwardContext[P, V]) RunWhile(pred func(V) bool) Status {
	for c.col.Begin().Compare(c.pos) < 0 {
		c.pos = c.col.Retreat(c.pos)
		if !pred(c.col.ReadUnchecked(c.pos)) {
			return Incomplete
		}
	}
	return Complete
}
