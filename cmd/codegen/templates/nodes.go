package templates

import (
	"strings"

	"github.com/valyala/quicktemplate"
)

// NodesGen renders memo/nodes.go: the OpNode type, constructor and pass
// methods for every arity from 1 to count.
func NodesGen(count int) string {
	sb := &strings.Builder{}
	qw := quicktemplate.AcquireWriter(sb)
	defer quicktemplate.ReleaseWriter(qw)
	w := qw.N()

	w.S("package memo\n")
	for arity := 1; arity <= count; arity++ {
		writeNode(w, arity)
	}
	return sb.String()
}

func writeNode(w *quicktemplate.QWriter, arity int) {
	tp := typeParams(arity)

	// type decl
	w.S("\ntype OpNode")
	w.D(arity)
	w.S("[")
	w.S(tp)
	w.S(", O comparable] struct {\n")
	for k := 0; k < arity; k++ {
		w.S("\tchild")
		w.D(k)
		w.S(" Value[T")
		w.D(k)
		w.S("]\n")
	}
	w.S("\tfn     func(")
	w.S(tp)
	w.S(") O\n")
	w.S("\tdirty  bool\n")
	w.S("\tcached O\n")
	w.S("}\n")

	// constructor
	w.S("\nfunc Op")
	w.D(arity)
	w.S("[")
	w.S(tp)
	w.S(", O comparable](\n")
	for k := 0; k < arity; k++ {
		w.S("\tchild")
		w.D(k)
		w.S(" Value[T")
		w.D(k)
		w.S("],\n")
	}
	w.S("\tfn func(")
	w.S(tp)
	w.S(") O,\n")
	w.S(") *OpNode")
	w.D(arity)
	w.S("[")
	w.S(tp)
	w.S(", O] {\n")
	w.S("\treturn &OpNode")
	w.D(arity)
	w.S("[")
	w.S(tp)
	w.S(", O]{\n")
	for k := 0; k < arity; k++ {
		w.S("\t\tchild")
		w.D(k)
		w.S(": child")
		w.D(k)
		w.S(",\n")
	}
	w.S("\t\tfn:     fn,\n")
	w.S("\t\tdirty:  true,\n")
	w.S("\t}\n")
	w.S("}\n")

	// markDirty
	w.S("\nfunc (n *OpNode")
	w.D(arity)
	w.S("[")
	w.S(tp)
	w.S(", O]) markDirty() bool {\n")
	w.S("\tif n.dirty {\n\t\treturn true\n\t}\n")
	w.S("\tanyDirty := false\n")
	for k := 0; k < arity; k++ {
		w.S("\tif n.child")
		w.D(k)
		w.S(".markDirty() {\n\t\tanyDirty = true\n\t}\n")
	}
	w.S("\tn.dirty = anyDirty\n")
	w.S("\treturn anyDirty\n")
	w.S("}\n")

	// eval
	w.S("\nfunc (n *OpNode")
	w.D(arity)
	w.S("[")
	w.S(tp)
	w.S(", O]) eval() O {\n")
	w.S("\tif !n.dirty {\n\t\treturn n.cached\n\t}\n")
	for k := 0; k < arity; k++ {
		w.S("\targ")
		w.D(k)
		w.S(" := n.child")
		w.D(k)
		w.S(".eval()\n")
	}
	w.S("\tn.cached = n.fn(\n")
	for k := 0; k < arity; k++ {
		w.S("\t\targ")
		w.D(k)
		w.S(",\n")
	}
	w.S("\t)\n")
	w.S("\tn.dirty = false\n")
	w.S("\treturn n.cached\n")
	w.S("}\n")

	// invalidate
	w.S("\nfunc (n *OpNode")
	w.D(arity)
	w.S("[")
	w.S(tp)
	w.S(", O]) invalidate() {\n")
	w.S("\tn.dirty = true\n")
	for k := 0; k < arity; k++ {
		w.S("\tn.child")
		w.D(k)
		w.S(".invalidate()\n")
	}
	w.S("}\n")
}
