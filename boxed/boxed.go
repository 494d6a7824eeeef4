// Package boxed is the dynamically typed sibling of package memo: the same
// two-pass mark-then-evaluate memoization over a homogeneous tree of boxed
// nodes. Operator nodes are n-ary and pass their children's values around
// as any, trading per-node indirection for a single node shape.
//
// Use memo when the tree's operand types are known at compile time; use
// boxed when trees are assembled from data at runtime.
package boxed

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrArityMismatch = errors.New("operator arity does not match child count")
	ErrNilOperator   = errors.New("operator function is nil")
	ErrNilChild      = errors.New("child node is nil")
	ErrSharedSubtree = errors.New("subtree appears more than once")
)

// Node is one vertex of a boxed expression tree.
type Node interface {
	markDirty() bool
	eval() any
	invalidate()
	childNodes() []Node
}

// Input is a terminal over a host-owned mutable value. The load closure
// captures the host pointer; the cache holds the value as last observed.
type Input struct {
	load  func() any
	cache any
	dirty bool
}

// In wraps a host value as a boxed terminal. The comparable constraint is
// checked here, at construction, so the any-typed comparisons inside the
// marking pass can never fault at evaluation time.
func In[T comparable](src *T) *Input {
	return &Input{
		load:  func() any { return *src },
		dirty: true,
	}
}

func (i *Input) markDirty() bool {
	i.dirty = i.cache != i.load()
	return i.dirty
}

func (i *Input) eval() any {
	i.cache = i.load()
	i.dirty = false
	return i.cache
}

func (i *Input) invalidate() {
	i.dirty = true
}

func (i *Input) childNodes() []Node {
	return nil
}

// OpNode is an n-ary interior node. Its tag names the operator; the tag is
// also interned to a 64-bit id for cheap identity checks.
type OpNode struct {
	tag      string
	tagID    uint64
	fn       func(args []any) any
	children []Node
	dirty    bool
	cached   any
}

// NewOp builds an interior node applying fn to the values of children.
// The declared arity must match the child count, every child must be
// non-nil, and no subtree may appear twice anywhere under the new node:
// these trees own their children exclusively, they are never DAGs.
func NewOp(tag string, arity int, fn func(args []any) any, children ...Node) (*OpNode, error) {
	if fn == nil {
		return nil, fmt.Errorf("op %q: %w", tag, ErrNilOperator)
	}
	if len(children) != arity {
		return nil, fmt.Errorf("op %q declared arity %d, got %d children: %w",
			tag, arity, len(children), ErrArityMismatch)
	}
	for idx, c := range children {
		if c == nil {
			return nil, fmt.Errorf("op %q child %d: %w", tag, idx, ErrNilChild)
		}
	}
	n := &OpNode{
		tag:      tag,
		tagID:    xxhash.Sum64String(tag),
		fn:       fn,
		children: children,
		dirty:    true,
	}
	if err := Validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Tag returns the operator's name.
func (n *OpNode) Tag() string {
	return n.tag
}

// TagID returns the interned 64-bit id of the operator's name. Two nodes
// built with the same tag share an id.
func (n *OpNode) TagID() uint64 {
	return n.tagID
}

func (n *OpNode) markDirty() bool {
	if n.dirty {
		return true
	}
	// Every child gets visited, even after one has already reported
	// dirty: each child's own flag has to be refreshed for the
	// evaluation pass regardless of what its siblings reported.
	anyDirty := false
	for _, c := range n.children {
		if c.markDirty() {
			anyDirty = true
		}
	}
	n.dirty = anyDirty
	return anyDirty
}

func (n *OpNode) eval() any {
	if !n.dirty {
		return n.cached
	}
	args := make([]any, len(n.children))
	for idx, c := range n.children {
		args[idx] = c.eval()
	}
	n.cached = n.fn(args)
	n.dirty = false
	return n.cached
}

func (n *OpNode) invalidate() {
	n.dirty = true
	for _, c := range n.children {
		c.invalidate()
	}
}

func (n *OpNode) childNodes() []Node {
	return n.children
}

// Reevaluate runs the marking pass then the evaluation pass over the
// tree, in that strict order, and returns the result.
func Reevaluate(root Node) any {
	root.markDirty()
	return root.eval()
}

// Invalidate force-dirties an entire tree, as after an operator panic
// left its dirty/cache state indeterminate.
func Invalidate(root Node) {
	root.invalidate()
}
