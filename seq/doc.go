/*
Package seq implements an immutable, persistent singly-linked sequence.

A sequence has exactly two cases: the empty sequence and a cons cell holding
a head element and a tail sequence. “Modification” always allocates new cells
and shares the untouched rest of the structure with the original, so two
sequences may share a common suffix and concurrent read access is safe by
construction.

All observable operations are derived from two fold primitives. FoldLeft is
iterative and uses constant stack regardless of input length; FoldRight is
true recursion and consumes one native stack frame per element, which is an
accepted limitation for very long inputs. FoldRightViaFoldLeft reproduces
FoldRight's output exactly while inheriting FoldLeft's stack behaviour, and
is the primitive the right-associative derived operations build on.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpinscala.seq'.
func tracer() tracing.Trace {
	return tracing.Select("fpinscala.seq")
}
