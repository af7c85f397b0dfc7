package bintree

import (
	"cmp"
)

// Size counts the nodes of t, leaves and branches alike.
func Size[T any](t Tree[T]) int {
	return Fold(t,
		func(T) int { return 1 },
		func(l, r int) int { return l + r + 1 })
}

// Maximum returns the largest leaf value of t. A tree is never empty, so
// Maximum always has an answer.
func Maximum[T cmp.Ordered](t Tree[T]) T {
	return Fold(t,
		func(v T) T { return v },
		func(l, r T) T { return max(l, r) })
}

// Depth is the number of branches on the longest path from the root to a
// leaf; the depth of a single leaf is 0.
func Depth[T any](t Tree[T]) int {
	return Fold(t,
		func(T) int { return 0 },
		func(l, r int) int { return max(l, r) + 1 })
}

// Map rebuilds t with every leaf value replaced by f of it, expressed as an
// instance of Fold: the leaf case constructs Leaf(f(v)) and the branch case
// reassembles Branch. Shape and size are preserved.
func Map[T, S any](t Tree[T], f func(T) S) Tree[S] {
	return Fold(t,
		func(v T) Tree[S] { return Leaf(f(v)) },
		Branch[S])
}

// Values collects the leaf values of t left to right.
func Values[T any](t Tree[T]) []T {
	return Fold(t,
		func(v T) []T { return []T{v} },
		func(l, r []T) []T { return append(l, r...) })
}

// --- Direct recursion twins ----------------------------------------------------

// SizeRec is the direct structural recursion behind Size. The fold-based
// operation and its twin must agree on every tree; the same holds for the
// other *Rec twins below.
func SizeRec[T any](t Tree[T]) int {
	if b, ok := t.(*branch[T]); ok {
		return SizeRec(b.left) + SizeRec(b.right) + 1
	}
	return 1
}

func MaximumRec[T cmp.Ordered](t Tree[T]) T {
	if b, ok := t.(*branch[T]); ok {
		return max(MaximumRec(b.left), MaximumRec(b.right))
	}
	return t.(*leaf[T]).value
}

func DepthRec[T any](t Tree[T]) int {
	if b, ok := t.(*branch[T]); ok {
		return max(DepthRec(b.left), DepthRec(b.right)) + 1
	}
	return 0
}

func MapRec[T, S any](t Tree[T], f func(T) S) Tree[S] {
	if b, ok := t.(*branch[T]); ok {
		return Branch(MapRec(b.left, f), MapRec(b.right, f))
	}
	return Leaf(f(t.(*leaf[T]).value))
}
