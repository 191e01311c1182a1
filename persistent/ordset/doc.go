/*
Package ordset implements immutable ordered sets.

Sets are created from a family, which binds the comparator for elements:

    s := ordset.Ordered[int]().OfList(5, 3, 8, 1)
    s.Elements()                  // [1 3 5 8]
    t := s.Union(s.Family().OfList(2, 3))

Sets share their implementation with package ordmap: a set is an ordered
tree with empty values. Sets never change once created; every operation
returns a new set sharing structure with its operands.

Binary operations (Union, Inter, Diff, Subset, Compare, Equal) expect both
operands to come from the same family. This is not checked.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordset

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.ordset'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.ordset")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordset: "+msg, msgargs...)
		panic(msg)
	}
}
