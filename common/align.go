package common

import "golang.org/x/exp/constraints"

// TypeAlign rounds length up to a multiple of alignVal, which must be a
// power of two.
func TypeAlign[T constraints.Integer](alignVal T, length T) T {
	return (length + alignVal - 1) &^ (alignVal - 1)
}

func ShortAlignOf[T constraints.Integer](length T) T {
	return TypeAlign(T(ShortAlign), length)
}

func IntAlignOf[T constraints.Integer](length T) T {
	return TypeAlign(T(IntAlign), length)
}

func MaxAlignOf[T constraints.Integer](length T) T {
	return TypeAlign(T(MaxAlign), length)
}

func MaxAlign64Of[T constraints.Integer](length T) T {
	return TypeAlign(T(MaxAlign64), length)
}
