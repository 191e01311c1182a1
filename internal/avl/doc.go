/*
Package avl implements the persistent height-balanced binary search tree which
is shared by ordered maps and ordered sets.

Trees are built from immutable nodes. The empty tree is the nil pointer. Every
operation returning a tree creates new nodes along the path it touched and shares
all other subtrees with its input; nodes are never modified once built.

A node's children differ in height by at most 2. This is looser than classical
AVL trees and trades marginally taller trees for fewer rotations.

Remarks:

- Functions are free functions taking a comparator, as maps and sets of different
  value types share the algorithms (Merge even combines three value types).

- Sets are trees with unit values (struct{}).

- Internal inconsistencies are signalled with panics; they indicate a defect in
  this package, never a user error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package avl

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.avl'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.avl")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("avl: "+msg, msgargs...)
		panic(msg)
	}
}
