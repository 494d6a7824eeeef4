package boxed

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Validate walks a finished tree and rejects structural sharing: every
// node must appear exactly once, because the two passes assume each node
// has a single parent driving its dirty flag and cache. NewOp runs this
// over every node it builds, so hand-assembled trees only need it if they
// were put together some other way.
func Validate(root Node) error {
	seen := mapset.NewThreadUnsafeSet[Node]()
	return walkUnique(root, seen)
}

func walkUnique(n Node, seen mapset.Set[Node]) error {
	if !seen.Add(n) {
		if op, ok := n.(*OpNode); ok {
			return fmt.Errorf("op %q: %w", op.tag, ErrSharedSubtree)
		}
		return fmt.Errorf("input terminal: %w", ErrSharedSubtree)
	}
	for _, c := range n.childNodes() {
		if err := walkUnique(c, seen); err != nil {
			return err
		}
	}
	return nil
}
