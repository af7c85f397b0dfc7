package bintree

import (
	"fmt"
)

// Tree is an immutable strict binary tree. It is a closed variant type with
// exactly two cases, Leaf and Branch, sealed by an unexported method so that
// no third case is constructible. A Tree is never empty.
type Tree[T any] interface {
	Match() Matcher[T]
	String() string
	isTree()
}

type leaf[T any] struct {
	value T
}

type branch[T any] struct {
	left, right Tree[T]
}

func (*leaf[T]) isTree()   {}
func (*branch[T]) isTree() {}

// Leaf returns a tree holding exactly one value and no children.
func Leaf[T any](value T) Tree[T] {
	return &leaf[T]{value: value}
}

// Branch joins two subtrees under a new node that carries no value of its
// own. The subtrees are held by reference, not copied.
func Branch[T any](left, right Tree[T]) Tree[T] {
	assertThat(left != nil && right != nil, "a branch owns exactly two subtrees, got nil")
	return &branch[T]{left: left, right: right}
}

// Fold replaces every constructor of t with a caller-supplied function:
// leafCase for every Leaf, branchCase for every Branch. Both subtree folds
// are fully evaluated, left before right, before branchCase combines them;
// there is no laziness and both sides are always visited.
//
// Fold recurses one native stack frame per level of t.
func Fold[T, R any](t Tree[T], leafCase func(T) R, branchCase func(R, R) R) R {
	switch n := t.(type) {
	case *leaf[T]:
		return leafCase(n.value)
	case *branch[T]:
		l := Fold(n.left, leafCase, branchCase)
		r := Fold(n.right, leafCase, branchCase)
		return branchCase(l, r)
	}
	panic("bintree: tree with a third case is not constructible")
}

// --- Equality and rendering --------------------------------------------------

// Equal compares two trees structurally: same shape, equal leaf values.
// Identity of nodes plays no role.
func Equal[T comparable](a, b Tree[T]) bool {
	la, aok := a.(*leaf[T])
	lb, bok := b.(*leaf[T])
	if aok != bok {
		return false
	}
	if aok {
		return la.value == lb.value
	}
	ba := a.(*branch[T])
	bb := b.(*branch[T])
	return Equal(ba.left, bb.left) && Equal(ba.right, bb.right)
}

func (t *leaf[T]) String() string {
	return fmt.Sprintf("%v", t.value)
}

func (t *branch[T]) String() string {
	return fmt.Sprintf("⟨%s %s⟩", t.left, t.right)
}

// --- Matching ----------------------------------------------------------------

// Matcher supports exhaustive two-case analysis over a tree:
//
//	var v int
//	var l, r Tree[int]
//	switch m := t.Match(); m {
//	case m.Leaf(&v):
//	    …
//	case m.Branch(&l, &r):
//	    …
//	}
type Matcher[T any] interface {
	Leaf(*T) Matcher[T]
	Branch(*Tree[T], *Tree[T]) Matcher[T]
}

type matcher[T any] struct {
	t Tree[T]
}

func (t *leaf[T]) Match() Matcher[T] {
	return matcher[T]{t: t}
}

func (t *branch[T]) Match() Matcher[T] {
	return matcher[T]{t: t}
}

func (tm matcher[T]) Leaf(value *T) Matcher[T] {
	if l, ok := tm.t.(*leaf[T]); ok {
		*value = l.value
		return tm
	}
	return nil
}

func (tm matcher[T]) Branch(left, right *Tree[T]) Matcher[T] {
	if b, ok := tm.t.(*branch[T]); ok {
		*left = b.left
		*right = b.right
		return tm
	}
	return nil
}

// --- Helpers -----------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bintree: "+msg, msgargs...)
		panic(msg)
	}
}
