package ordered

import "fmt"

// Pair is a binding of a key to a value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// P creates a binding of key and value.
func P[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Decompose returns key and value of a binding.
func (p Pair[K, V]) Decompose() (K, V) {
	return p.Key, p.Value
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("⟨%v→%v⟩", p.Key, p.Value)
}
