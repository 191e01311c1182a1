/*
Package ordered is the root of a small library of persistent ordered containers.

Ordered maps and sets live in sub-packages:

    persistent/ordmap   // immutable ordered map, keys bound to values
    persistent/ordset   // immutable ordered set

Both are thin facades over one height-balanced binary search tree. Every
“modification” returns a new container which shares all untouched subtrees
with the original, leaving the original unchanged. Containers are therefore
safe for concurrent readers without any locking.

The ordering of keys is given by a Comparator, which is bound once when a
container family is created and is inherited by every container derived from it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordered

// DuplicatePolicy decides which of several bindings with equal keys survives
// bulk construction from an unsorted list.
type DuplicatePolicy int8

const (
	LastWins  DuplicatePolicy = iota // later bindings replace earlier ones, as with repeated inserts
	FirstWins                        // the first binding for a key is kept
)

func (p DuplicatePolicy) String() string {
	if p == FirstWins {
		return "first-wins"
	}
	return "last-wins"
}
