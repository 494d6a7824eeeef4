package memo

// Slot is a type-erased binding of one tree to a zero-argument trigger, so
// a host struct can hold "some expression, evaluating to some value"
// without being generic over the tree's shape. Triggering an unbound Slot
// is a no-op.
type Slot struct {
	trigger func() any
	last    any
	fired   bool
}

// Bind installs a tree into the slot, discarding any previous binding and
// its cache state wholesale. The tree's concrete shape is erased behind
// the trigger closure.
func Bind[T comparable](s *Slot, root Value[T]) {
	s.trigger = func() any {
		return Reevaluate(root)
	}
	s.last = nil
	s.fired = false
}

// Trigger reevaluates the bound tree, if any, and retains the result.
func (s *Slot) Trigger() {
	if s.trigger == nil {
		return
	}
	s.last = s.trigger()
	s.fired = true
}

// Last reports the result of the most recent Trigger on the current
// binding. ok is false until the binding has been triggered at least once.
func (s *Slot) Last() (v any, ok bool) {
	return s.last, s.fired
}
