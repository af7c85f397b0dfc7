package seq

import (
	"github.com/tuterbatuhan/fpinscala/maybe"
	"github.com/tuterbatuhan/fpinscala/result"
)

// Number constrains the element types accepted by the numeric reductions Sum,
// Product and AddPairwise.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds up the elements of s. The sum of the empty sequence is 0.
func Sum[T Number](s Seq[T]) T {
	return FoldLeft(s, T(0), func(acc, x T) T { return acc + x })
}

// Product multiplies the elements of s. The product of the empty sequence
// is 1. A zero element short-circuits the traversal: the result is 0 without
// visiting the rest of the sequence, observationally the same as folding to
// the end.
func Product[T Number](s Seq[T]) T {
	p := T(1)
	for {
		c, ok := s.(*cons[T])
		if !ok {
			return p
		}
		if c.head == 0 {
			return 0
		}
		p *= c.head
		s = c.tail
	}
}

// Length counts the elements of s.
func Length[T any](s Seq[T]) int {
	return FoldLeft(s, 0, func(n int, _ T) int { return n + 1 })
}

// Append concatenates a and b. The cells of a are rebuilt in front of b; b
// itself is shared with the result unchanged, so appending to an empty a
// returns b as-is.
func Append[T any](a, b Seq[T]) Seq[T] {
	return FoldRightViaFoldLeft(a, b, func(h T, acc Seq[T]) Seq[T] {
		return Cons(h, acc)
	})
}

// Concat flattens a sequence of sequences into one, left to right.
func Concat[T any](ss Seq[Seq[T]]) Seq[T] {
	return FoldRightViaFoldLeft(ss, Empty[T](), Append[T])
}

// Map applies f to every element, preserving length and order.
func Map[T, S any](s Seq[T], f func(T) S) Seq[S] {
	return FoldRightViaFoldLeft(s, Empty[S](), func(h T, acc Seq[S]) Seq[S] {
		return Cons(f(h), acc)
	})
}

// Filter keeps the elements satisfying pred, preserving their relative order.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return FoldRightViaFoldLeft(s, Empty[T](), func(h T, acc Seq[T]) Seq[T] {
		if pred(h) {
			return Cons(h, acc)
		}
		return acc
	})
}

// FlatMap maps every element to a sequence of its own and flattens the
// results; an element may expand to zero or more elements.
func FlatMap[T, S any](s Seq[T], f func(T) Seq[S]) Seq[S] {
	return Concat(Map(s, f))
}

// Drop returns s without its first n elements, by counted descent rather than
// a fold. Drop is total: n <= 0 returns s unchanged, and dropping past the
// end returns the empty sequence.
func Drop[T any](s Seq[T], n int) Seq[T] {
	for n > 0 {
		c, ok := s.(*cons[T])
		if !ok {
			return Empty[T]()
		}
		s = c.tail
		n--
	}
	return s
}

// DropWhile removes the longest prefix of elements satisfying pred, stopping
// at the first element that fails it.
func DropWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	for {
		c, ok := s.(*cons[T])
		if !ok || !pred(c.head) {
			return s
		}
		s = c.tail
	}
}

// Init returns all elements of s but the last one. It fails with
// EmptyStructureError on an empty sequence. Init rebuilds the whole spine and
// recurses one frame per element.
func Init[T any](s Seq[T]) (Seq[T], error) {
	c, ok := s.(*cons[T])
	if !ok {
		return nil, &EmptyStructureError{Op: "init"}
	}
	if _, ok := c.tail.(*cons[T]); !ok {
		return Empty[T](), nil
	}
	rest, err := Init(c.tail)
	if err != nil {
		return nil, err
	}
	return Cons(c.head, rest), nil
}

// ZipWith combines a and b position by position with f. The result has the
// length of the shorter input; mismatched lengths are not an error.
func ZipWith[A, B, C any](a Seq[A], b Seq[B], f func(A, B) C) Seq[C] {
	ca, aok := a.(*cons[A])
	cb, bok := b.(*cons[B])
	if !aok || !bok {
		return Empty[C]()
	}
	return Cons(f(ca.head, cb.head), ZipWith(ca.tail, cb.tail, f))
}

// AddPairwise adds two numeric sequences position by position, with ZipWith's
// truncation policy.
func AddPairwise[T Number](a, b Seq[T]) Seq[T] {
	return ZipWith(a, b, func(x, y T) T { return x + y })
}

// HasSubsequence reports whether needle occurs contiguously, in order,
// starting at some offset in s. The empty needle matches any sequence. On a
// mismatch the scan restarts at the next element of s, never skipping ahead,
// so the worst case is O(len(s)·len(needle)).
func HasSubsequence[T comparable](s, needle Seq[T]) bool {
	tracer().Debugf("hasSubsequence: scanning for a contiguous match")
	for {
		if startsWith(s, needle) {
			return true
		}
		c, ok := s.(*cons[T])
		if !ok {
			return false
		}
		s = c.tail
	}
}

func startsWith[T comparable](s, prefix Seq[T]) bool {
	for {
		p, ok := prefix.(*cons[T])
		if !ok {
			return true
		}
		c, ok := s.(*cons[T])
		if !ok || c.head != p.head {
			return false
		}
		s, prefix = c.tail, p.tail
	}
}

// Find returns the first element satisfying pred, or Nothing.
func Find[T any](s Seq[T], pred func(T) bool) maybe.Maybe[T] {
	for {
		c, ok := s.(*cons[T])
		if !ok {
			return maybe.Nothing[T]()
		}
		if pred(c.head) {
			return maybe.Just(c.head)
		}
		s = c.tail
	}
}

// Reduce folds a non-empty sequence with f, seeded by its first element.
// Reducing the empty sequence yields Err(EmptyStructureError): there is no
// seed to start from.
func Reduce[T any](s Seq[T], f func(T, T) T) result.Result[T] {
	c, ok := s.(*cons[T])
	if !ok {
		return result.Err[T](&EmptyStructureError{Op: "reduce"})
	}
	return result.Ok(FoldLeft(c.tail, c.head, f))
}

// Slice copies the elements of s into a fresh Go slice, in order.
func Slice[T any](s Seq[T]) []T {
	return FoldLeft(s, make([]T, 0, Length(s)), func(acc []T, h T) []T {
		return append(acc, h)
	})
}
