/*
Package ordmap implements immutable ordered maps.

Maps are created from a family, which binds the comparator for keys once and
for all. Every map derived from a family member (by With, WithDeleted, Union, …)
inherits it:

    ages := ordmap.Ordered[string, int]()
    m := ages.OfList(ordered.P("Bob", 39), ordered.P("Alice", 42))
    m2 := m.With("Carol", 27)      // m is unchanged
    age, err := m2.Find("Dave")    // err wraps ordered.ErrNotFound

Maps never change once created. Operations return new maps which share all
untouched parts with their origin, so keeping old versions around is cheap and
maps may be read concurrently without coordination.

Binary operations (Union, Merge, Compare, Equal, …) expect both operands to come
from the same family. This is not checked; mixing families with different
comparators produces unspecified results.

The zero value of Map is not usable; start with a family's Empty map.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordmap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.ordmap'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.ordmap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordmap: "+msg, msgargs...)
		panic(msg)
	}
}
