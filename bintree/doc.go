/*
Package bintree implements an immutable strict binary tree.

Every node is one of exactly two cases: a leaf carrying a single value, or a
branch holding two subtrees and no value of its own. There is no empty case
(a tree always has at least one leaf), so no operation in this package can
fail. Trees are never mutated after construction; subtrees are held by
reference and may be shared between trees.

A single generic recursion scheme, Fold, replaces every constructor with a
caller-supplied function. All observable operations (Size, Maximum, Depth,
Map, Values) are instances of Fold, and each of the numeric ones has a
direct structural-recursion twin that is behaviorally identical, a tested
property rather than an implementation accident.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpinscala.bintree'.
func tracer() tracing.Trace {
	return tracing.Select("fpinscala.bintree")
}
