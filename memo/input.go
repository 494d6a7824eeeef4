package memo

// Input is a terminal wrapping a pointer to a host-owned mutable value,
// plus a private copy of the value as last observed. Its dirtiness is
// derived, not stored: each marking pass recomputes it as cache != *src.
//
// The pointed-to value must outlive the Input. Nothing checks this.
type Input[T comparable] struct {
	src   *T
	cache T
	dirty bool
}

// In wraps a host value as a tree terminal. The comparable constraint is
// what rejects non-equality-comparable value types at construction.
func In[T comparable](src *T) *Input[T] {
	return &Input[T]{src: src, dirty: true}
}

func (i *Input[T]) markDirty() bool {
	i.dirty = i.cache != *i.src
	return i.dirty
}

// eval unconditionally refreshes the cache from the source. It runs
// whenever an evaluation pass descends this far, even if this terminal
// itself compared clean, because the parent operator needs a current
// value either way.
func (i *Input[T]) eval() T {
	i.cache = *i.src
	i.dirty = false
	return i.cache
}

func (i *Input[T]) invalidate() {
	i.dirty = true
}
