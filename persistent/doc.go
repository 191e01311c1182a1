/*
Package persistent is the home of immutable persistent ordered containers.

Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.

Sub-package ordmap implements ordered maps, sub-package ordset ordered sets. Both
are backed by the same height-balanced binary search tree. Every “modification”
creates a new container which shares all untouched subtrees with its origin.
This implies that making copies is cheap in terms of space- and time-complexity,
and that containers may be read by any number of goroutines without locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
