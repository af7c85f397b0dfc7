package seq

import (
	"fmt"
	"strings"

	"github.com/tuterbatuhan/fpinscala/maybe"
)

// Seq is an immutable singly-linked sequence. It is a closed variant type
// with exactly two cases, the empty sequence and a cons cell, sealed by an
// unexported method so that no third case is constructible.
//
// A Seq value is never mutated after construction. Every cons cell holds its
// tail by reference; operations that "modify" a sequence build new cells in
// front of shared, untouched substructure.
type Seq[T any] interface {
	Match() Matcher[T]
	String() string
	isSeq()
}

type empty[T any] struct{}

type cons[T any] struct {
	head T
	tail Seq[T]
}

func (empty[T]) isSeq() {}
func (*cons[T]) isSeq() {}

// Empty returns the canonical empty sequence, the terminal for all traversals.
func Empty[T any]() Seq[T] {
	return empty[T]{}
}

// Cons prepends head to an already-fully-built tail. The tail is shared, not
// copied.
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	assertThat(tail != nil, "the tail of a cons cell is never nil; use Empty")
	return &cons[T]{head: head, tail: tail}
}

// New builds a sequence holding values in the given order. Construction runs
// right-to-left, prepending each value to the sequence of its successors.
func New[T any](values ...T) Seq[T] {
	s := Empty[T]()
	for i := len(values) - 1; i >= 0; i-- {
		s = Cons(values[i], s)
	}
	return s
}

// IsEmpty is true iff s is the empty sequence.
func IsEmpty[T any](s Seq[T]) bool {
	_, ok := s.(*cons[T])
	return !ok
}

// --- Destructors -------------------------------------------------------------

// Head returns the first element of s. It fails with EmptyStructureError on
// an empty sequence; use First where absence is not an error.
func Head[T any](s Seq[T]) (T, error) {
	if c, ok := s.(*cons[T]); ok {
		return c.head, nil
	}
	var none T
	return none, &EmptyStructureError{Op: "head"}
}

// First is the non-failing companion of Head.
func First[T any](s Seq[T]) maybe.Maybe[T] {
	if c, ok := s.(*cons[T]); ok {
		return maybe.Just(c.head)
	}
	return maybe.Nothing[T]()
}

// Tail returns s without its first element. Unlike Head, Tail is total: the
// tail of the empty sequence is the empty sequence, which makes Tail behave
// as Drop(s, 1).
func Tail[T any](s Seq[T]) Seq[T] {
	if c, ok := s.(*cons[T]); ok {
		return c.tail
	}
	return Empty[T]()
}

// SetHead replaces the first element of s, sharing the old tail with the
// result. It fails with EmptyStructureError on an empty sequence: there is no
// head cell to replace.
func SetHead[T any](s Seq[T], head T) (Seq[T], error) {
	if c, ok := s.(*cons[T]); ok {
		return Cons(head, c.tail), nil
	}
	return nil, &EmptyStructureError{Op: "setHead"}
}

// --- Equality and rendering --------------------------------------------------

// Equal compares two sequences structurally: same length, equal elements in
// the same order. Identity of cells plays no role.
func Equal[T comparable](a, b Seq[T]) bool {
	for {
		ca, aok := a.(*cons[T])
		cb, bok := b.(*cons[T])
		if !aok || !bok {
			return aok == bok
		}
		if ca.head != cb.head {
			return false
		}
		a, b = ca.tail, cb.tail
	}
}

func (s *cons[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	b.WriteString(fmt.Sprintf("%v", s.head))
	t := s.tail
	for {
		c, ok := t.(*cons[T])
		if !ok {
			break
		}
		b.WriteString(fmt.Sprintf(" %v", c.head))
		t = c.tail
	}
	b.WriteByte(')')
	return b.String()
}

func (empty[T]) String() string {
	return "()"
}

// --- Matching ----------------------------------------------------------------

// Matcher supports exhaustive two-case analysis over a sequence:
//
//	var h int
//	var t Seq[int]
//	switch m := s.Match(); m {
//	case m.Cons(&h, &t):
//	    …
//	case m.Empty():
//	    …
//	}
type Matcher[T any] interface {
	Cons(*T, *Seq[T]) Matcher[T]
	Empty() Matcher[T]
}

type matcher[T any] struct {
	s Seq[T]
}

func (s *cons[T]) Match() Matcher[T] {
	return matcher[T]{s: s}
}

func (s empty[T]) Match() Matcher[T] {
	return matcher[T]{s: s}
}

func (sm matcher[T]) Cons(head *T, tail *Seq[T]) Matcher[T] {
	if c, ok := sm.s.(*cons[T]); ok {
		*head = c.head
		*tail = c.tail
		return sm
	}
	return nil
}

func (sm matcher[T]) Empty() Matcher[T] {
	if _, ok := sm.s.(*cons[T]); !ok {
		return sm
	}
	return nil
}

// --- Helpers -----------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("seq: "+msg, msgargs...)
		panic(msg)
	}
}
