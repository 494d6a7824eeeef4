package boxed_test

import (
	"testing"

	"github.com/delaneyj/memotree/boxed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addInts(args []any) any {
	sum := 0
	for _, a := range args {
		sum += a.(int)
	}
	return sum
}

func TestThreeInputSum(t *testing.T) {
	a, b, c := 1, 11, 111

	root, err := boxed.NewOp("add", 3, addInts,
		boxed.In(&a), boxed.In(&b), boxed.In(&c))
	require.NoError(t, err)

	assert.Equal(t, 123, boxed.Reevaluate(root))

	b = 16
	assert.Equal(t, 128, boxed.Reevaluate(root))
}

func TestIdempotentWhenInputsUnchanged(t *testing.T) {
	a := 1

	callCount := 0
	root, err := boxed.NewOp("count", 1, func(args []any) any {
		callCount++
		return args[0]
	}, boxed.In(&a))
	require.NoError(t, err)

	assert.Equal(t, 1, boxed.Reevaluate(root))
	assert.Equal(t, 1, boxed.Reevaluate(root))
	assert.Equal(t, 1, callCount)
}

func TestCleanSubtreeSkip(t *testing.T) {
	// Changing only A must recompute L and the root, but never R.
	//   A   B   C   D
	//    \ /     \ /
	//     L       R
	//      \     /
	//        root
	a, b, c, d := 1, 2, 3, 4

	leftCount, rightCount := 0, 0
	l, err := boxed.NewOp("add", 2, func(args []any) any {
		leftCount++
		return addInts(args)
	}, boxed.In(&a), boxed.In(&b))
	require.NoError(t, err)
	r, err := boxed.NewOp("add", 2, func(args []any) any {
		rightCount++
		return addInts(args)
	}, boxed.In(&c), boxed.In(&d))
	require.NoError(t, err)
	root, err := boxed.NewOp("add", 2, addInts, l, r)
	require.NoError(t, err)

	require.Equal(t, 10, boxed.Reevaluate(root))
	require.Equal(t, 1, leftCount)
	require.Equal(t, 1, rightCount)

	a = 5
	require.Equal(t, 14, boxed.Reevaluate(root))
	assert.Equal(t, 2, leftCount)
	assert.Equal(t, 1, rightCount)
}

func TestConstructionRejectsArityMismatch(t *testing.T) {
	a := 1
	_, err := boxed.NewOp("add", 2, addInts, boxed.In(&a))
	assert.ErrorIs(t, err, boxed.ErrArityMismatch)
}

func TestConstructionRejectsNilOperator(t *testing.T) {
	a := 1
	_, err := boxed.NewOp("noop", 1, nil, boxed.In(&a))
	assert.ErrorIs(t, err, boxed.ErrNilOperator)
}

func TestConstructionRejectsNilChild(t *testing.T) {
	_, err := boxed.NewOp("add", 1, addInts, nil)
	assert.ErrorIs(t, err, boxed.ErrNilChild)
}

func TestConstructionRejectsSharedSubtree(t *testing.T) {
	// The same terminal wired under both children makes the tree a DAG,
	// which the single-parent dirty discipline cannot support.
	//     A    B
	//    / \  /
	//   L    R
	//    \  /
	//    root
	a, b := 1, 2
	shared := boxed.In(&a)

	l, err := boxed.NewOp("add", 1, addInts, shared)
	require.NoError(t, err)
	r, err := boxed.NewOp("add", 2, addInts, shared, boxed.In(&b))
	require.NoError(t, err)

	_, err = boxed.NewOp("add", 2, addInts, l, r)
	assert.ErrorIs(t, err, boxed.ErrSharedSubtree)
}

func TestValidateAcceptsProperTree(t *testing.T) {
	a, b := 1, 2
	root, err := boxed.NewOp("add", 2, addInts, boxed.In(&a), boxed.In(&b))
	require.NoError(t, err)
	assert.NoError(t, boxed.Validate(root))
}

func TestTagInterning(t *testing.T) {
	a, b := 1, 2
	n1, err := boxed.NewOp("add", 1, addInts, boxed.In(&a))
	require.NoError(t, err)
	n2, err := boxed.NewOp("add", 1, addInts, boxed.In(&b))
	require.NoError(t, err)
	n3, err := boxed.NewOp("mul", 1, addInts, boxed.In(&b))
	require.NoError(t, err)

	assert.Equal(t, "add", n1.Tag())
	assert.Equal(t, n1.TagID(), n2.TagID())
	assert.NotEqual(t, n1.TagID(), n3.TagID())
}

func TestMixedValueTypes(t *testing.T) {
	label := "n"
	n := 1

	root, err := boxed.NewOp("label", 2, func(args []any) any {
		return args[0].(string) + ": " + string(rune('0'+args[1].(int)))
	}, boxed.In(&label), boxed.In(&n))
	require.NoError(t, err)

	assert.Equal(t, "n: 1", boxed.Reevaluate(root))
	n = 2
	assert.Equal(t, "n: 2", boxed.Reevaluate(root))
}

func TestInvalidateForcesFullRecompute(t *testing.T) {
	a := 1

	callCount := 0
	root, err := boxed.NewOp("count", 1, func(args []any) any {
		callCount++
		return args[0]
	}, boxed.In(&a))
	require.NoError(t, err)

	require.Equal(t, 1, boxed.Reevaluate(root))
	require.Equal(t, 1, callCount)

	boxed.Invalidate(root)
	assert.Equal(t, 1, boxed.Reevaluate(root))
	assert.Equal(t, 2, callCount)
}

func TestSlot(t *testing.T) {
	a, b := 1, 2

	var slot boxed.Slot
	assert.NotPanics(t, slot.Trigger)
	_, ok := slot.Last()
	assert.False(t, ok)

	root, err := boxed.NewOp("add", 2, addInts, boxed.In(&a), boxed.In(&b))
	require.NoError(t, err)
	slot.Bind(root)
	slot.Trigger()
	v, ok := slot.Last()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	// Rebinding replaces the tree and drops the retained result.
	c := 10
	root2, err := boxed.NewOp("identity", 1, func(args []any) any {
		return args[0]
	}, boxed.In(&c))
	require.NoError(t, err)
	slot.Bind(root2)
	_, ok = slot.Last()
	assert.False(t, ok)

	slot.Trigger()
	v, _ = slot.Last()
	assert.Equal(t, 10, v)
}
