package seq

import (
	fp "github.com/tuterbatuhan/fpinscala"
)

// FoldRight is the canonical right fold: it replaces every cons cell of s
// with f and the terminating empty sequence with z, combining elements from
// the tail toward the head.
//
// FoldRight recurses on the native stack, one frame per element, and may
// exhaust the stack on sufficiently long sequences. FoldRightViaFoldLeft
// computes the identical result with constant stack.
func FoldRight[T, R any](s Seq[T], z R, f func(T, R) R) R {
	c, ok := s.(*cons[T])
	if !ok {
		return z
	}
	return f(c.head, FoldRight(c.tail, z, f))
}

// FoldLeft is the left fold: the accumulator starts at z and absorbs elements
// head-first. The tail call is written as a loop, so auxiliary stack usage is
// constant regardless of the length of s; every stack-safe operation in this
// package bottoms out here.
func FoldLeft[T, R any](s Seq[T], z R, f func(R, T) R) R {
	acc := z
	for {
		c, ok := s.(*cons[T])
		if !ok {
			return acc
		}
		acc = f(acc, c.head)
		s = c.tail
	}
}

// FoldRightViaFoldLeft reproduces FoldRight using only FoldLeft: fold left
// over the reversed sequence, applying f with its arguments flipped. The
// output is observationally identical to FoldRight for all inputs.
func FoldRightViaFoldLeft[T, R any](s Seq[T], z R, f func(T, R) R) R {
	return FoldLeft(Reverse(s), z, fp.Flip(f))
}

// Reverse returns s with its elements in opposite order, in a single pass.
func Reverse[T any](s Seq[T]) Seq[T] {
	return FoldLeft(s, Empty[T](), func(acc Seq[T], h T) Seq[T] {
		return Cons(h, acc)
	})
}
