// Package memo is a pull-based memoizing expression tree. A tree is built
// once from Input terminals and OpNode interior nodes, then reevaluated on
// demand: a marking pass recomputes every node's dirty flag bottom-up from
// the current state of the inputs, and an evaluation pass recomputes only
// the dirty nodes, returning cached results for everything else.
//
// Nothing here is reactive. Mutations to the host values referenced by
// terminals accumulate silently until the caller asks for a fresh result
// via Reevaluate or a bound Slot.
//
// Trees are single-threaded. Reevaluate must not run concurrently with
// itself or with writes to the referenced host values.
package memo

// Node is one vertex of a memoized expression tree.
type Node interface {
	// markDirty recomputes this node's dirty flag from the current state
	// of the terminals below it and returns the new flag. It visits every
	// child, even once one of them has already reported dirty.
	markDirty() bool
	// invalidate force-marks this node and everything below it as dirty,
	// so the next evaluation recomputes the whole subtree.
	invalidate()
}

// Value is a Node whose evaluation produces a T. All tree constructors
// accept and return Values, so operand types and arities are checked when
// the tree is built rather than when it is evaluated.
type Value[T comparable] interface {
	Node
	// eval returns the node's current value. Clean nodes return their
	// cache without descending; dirty nodes recompute, store and clear
	// their dirty flag.
	eval() T
}

// Reevaluate runs the marking pass over the whole tree, then the
// evaluation pass, and returns the result. The order is load-bearing: the
// evaluation pass trusts dirty flags only because the marking pass just
// refreshed every one of them against the current input values.
func Reevaluate[T comparable](root Value[T]) T {
	root.markDirty()
	return root.eval()
}

// Invalidate force-dirties an entire tree. Use it after an operator
// function panicked mid-evaluation, which leaves dirty/cache state
// indeterminate below the point of failure.
func Invalidate(root Node) {
	root.invalidate()
}
