package memo

type OpNode1[T0, O comparable] struct {
	child0 Value[T0]
	fn     func(T0) O
	dirty  bool
	cached O
}

func Op1[T0, O comparable](
	child0 Value[T0],
	fn func(T0) O,
) *OpNode1[T0, O] {
	return &OpNode1[T0, O]{
		child0: child0,
		fn:     fn,
		dirty:  true,
	}
}

func (n *OpNode1[T0, O]) markDirty() bool {
	if n.dirty {
		return true
	}
	anyDirty := false
	if n.child0.markDirty() {
		anyDirty = true
	}
	n.dirty = anyDirty
	return anyDirty
}

func (n *OpNode1[T0, O]) eval() O {
	if !n.dirty {
		return n.cached
	}
	arg0 := n.child0.eval()
	n.cached = n.fn(
		arg0,
	)
	n.dirty = false
	return n.cached
}

func (n *OpNode1[T0, O]) invalidate() {
	n.dirty = true
	n.child0.invalidate()
}

type OpNode2[T0, T1, O comparable] struct {
	child0 Value[T0]
	child1 Value[T1]
	fn     func(T0, T1) O
	dirty  bool
	cached O
}

func Op2[T0, T1, O comparable](
	child0 Value[T0],
	child1 Value[T1],
	fn func(T0, T1) O,
) *OpNode2[T0, T1, O] {
	return &OpNode2[T0, T1, O]{
		child0: child0,
		child1: child1,
		fn:     fn,
		dirty:  true,
	}
}

func (n *OpNode2[T0, T1, O]) markDirty() bool {
	if n.dirty {
		return true
	}
	anyDirty := false
	if n.child0.markDirty() {
		anyDirty = true
	}
	if n.child1.markDirty() {
		anyDirty = true
	}
	n.dirty = anyDirty
	return anyDirty
}

func (n *OpNode2[T0, T1, O]) eval() O {
	if !n.dirty {
		return n.cached
	}
	arg0 := n.child0.eval()
	arg1 := n.child1.eval()
	n.cached = n.fn(
		arg0,
		arg1,
	)
	n.dirty = false
	return n.cached
}

func (n *OpNode2[T0, T1, O]) invalidate() {
	n.dirty = true
	n.child0.invalidate()
	n.child1.invalidate()
}

type OpNode3[T0, T1, T2, O comparable] struct {
	child0 Value[T0]
	child1 Value[T1]
	child2 Value[T2]
	fn     func(T0, T1, T2) O
	dirty  bool
	cached O
}

func Op3[T0, T1, T2, O comparable](
	child0 Value[T0],
	child1 Value[T1],
	child2 Value[T2],
	fn func(T0, T1, T2) O,
) *OpNode3[T0, T1, T2, O] {
	return &OpNode3[T0, T1, T2, O]{
		child0: child0,
		child1: child1,
		child2: child2,
		fn:     fn,
		dirty:  true,
	}
}

func (n *OpNode3[T0, T1, T2, O]) markDirty() bool {
	if n.dirty {
		return true
	}
	anyDirty := false
	if n.child0.markDirty() {
		anyDirty = true
	}
	if n.child1.markDirty() {
		anyDirty = true
	}
	if n.child2.markDirty() {
		anyDirty = true
	}
	n.dirty = anyDirty
	return anyDirty
}

func (n *OpNode3[T0, T1, T2, O]) eval() O {
	if !n.dirty {
		return n.cached
	}
	arg0 := n.child0.eval()
	arg1 := n.child1.eval()
	arg2 := n.child2.eval()
	n.cached = n.fn(
		arg0,
		arg1,
		arg2,
	)
	n.dirty = false
	return n.cached
}

func (n *OpNode3[T0, T1, T2, O]) invalidate() {
	n.dirty = true
	n.child0.invalidate()
	n.child1.invalidate()
	n.child2.invalidate()
}

type OpNode4[T0, T1, T2, T3, O comparable] struct {
	child0 Value[T0]
	child1 Value[T1]
	child2 Value[T2]
	child3 Value[T3]
	fn     func(T0, T1, T2, T3) O
	dirty  bool
	cached O
}

func Op4[T0, T1, T2, T3, O comparable](
	child0 Value[T0],
	child1 Value[T1],
	child2 Value[T2],
	child3 Value[T3],
	fn func(T0, T1, T2, T3) O,
) *OpNode4[T0, T1, T2, T3, O] {
	return &OpNode4[T0, T1, T2, T3, O]{
		child0: child0,
		child1: child1,
		child2: child2,
		child3: child3,
		fn:     fn,
		dirty:  true,
	}
}

func (n *OpNode4[T0, T1, T2, T3, O]) markDirty() bool {
	if n.dirty {
		return true
	}
	anyDirty := false
	if n.child0.markDirty() {
		anyDirty = true
	}
	if n.child1.markDirty() {
		anyDirty = true
	}
	if n.child2.markDirty() {
		anyDirty = true
	}
	if n.child3.markDirty() {
		anyDirty = true
	}
	n.dirty = anyDirty
	return anyDirty
}

func (n *OpNode4[T0, T1, T2, T3, O]) eval() O {
	if !n.dirty {
		return n.cached
	}
	arg0 := n.child0.eval()
	arg1 := n.child1.eval()
	arg2 := n.child2.eval()
	arg3 := n.child3.eval()
	n.cached = n.fn(
		arg0,
		arg1,
		arg2,
		arg3,
	)
	n.dirty = false
	return n.cached
}

func (n *OpNode4[T0, T1, T2, T3, O]) invalidate() {
	n.dirty = true
	n.child0.invalidate()
	n.child1.invalidate()
	n.child2.invalidate()
	n.child3.invalidate()
}
