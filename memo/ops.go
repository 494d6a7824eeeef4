package memo

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add builds a binary addition node over two subtrees.
func Add[T number](a, b Value[T]) *OpNode2[T, T, T] {
	return Op2(a, b, func(x, y T) T { return x + y })
}

// Mul builds a binary multiplication node.
func Mul[T number](a, b Value[T]) *OpNode2[T, T, T] {
	return Op2(a, b, func(x, y T) T { return x * y })
}

// Min builds a binary minimum node.
func Min[T number](a, b Value[T]) *OpNode2[T, T, T] {
	return Op2(a, b, func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

// Max builds a binary maximum node.
func Max[T number](a, b Value[T]) *OpNode2[T, T, T] {
	return Op2(a, b, func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// Concat builds a binary string concatenation node.
func Concat[T ~string](a, b Value[T]) *OpNode2[T, T, T] {
	return Op2(a, b, func(x, y T) T { return x + y })
}

// Sum left-folds Add over one or more subtrees, mirroring how a chain of
// binary + operators associates.
func Sum[T number](first Value[T], rest ...Value[T]) Value[T] {
	acc := first
	for _, next := range rest {
		acc = Add(acc, next)
	}
	return acc
}
