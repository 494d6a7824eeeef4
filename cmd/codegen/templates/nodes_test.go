package templates_test

import (
	"os"
	"testing"

	"github.com/delaneyj/memotree/cmd/codegen/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodesGenDeclaresEveryArity(t *testing.T) {
	src := templates.NodesGen(3)

	assert.Contains(t, src, "package memo\n")
	assert.Contains(t, src, "type OpNode1[T0, O comparable] struct {")
	assert.Contains(t, src, "type OpNode2[T0, T1, O comparable] struct {")
	assert.Contains(t, src, "type OpNode3[T0, T1, T2, O comparable] struct {")
	assert.NotContains(t, src, "OpNode4")

	assert.Contains(t, src, "func Op2[T0, T1, O comparable](")
	assert.Contains(t, src, "func (n *OpNode3[T0, T1, T2, O]) markDirty() bool {")
	assert.Contains(t, src, "func (n *OpNode3[T0, T1, T2, O]) eval() O {")
	assert.Contains(t, src, "func (n *OpNode3[T0, T1, T2, O]) invalidate() {")
}

func TestNodesGenMatchesCheckedInSource(t *testing.T) {
	want, err := os.ReadFile("../../../memo/nodes.go")
	require.NoError(t, err)

	assert.Equal(t, string(want), templates.NodesGen(4))
}
