package boxed

// Slot binds one boxed tree to a zero-argument trigger. Rebinding
// replaces the old tree and its cache state wholesale; triggering an
// unbound Slot is a no-op.
type Slot struct {
	root  Node
	last  any
	fired bool
}

// Bind installs a tree, discarding any previous binding.
func (s *Slot) Bind(root Node) {
	s.root = root
	s.last = nil
	s.fired = false
}

// Trigger reevaluates the bound tree, if any, and retains the result.
func (s *Slot) Trigger() {
	if s.root == nil {
		return
	}
	s.last = Reevaluate(s.root)
	s.fired = true
}

// Last reports the result of the most recent Trigger on the current
// binding. ok is false until the binding has been triggered at least once.
func (s *Slot) Last() (v any, ok bool) {
	return s.last, s.fired
}
