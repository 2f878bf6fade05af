package hashtable

import (
	"fmt"
	"math"
	"strings"
)

// Range calls yield for every mapping until yield returns false.
//
// Notes:
//   - The visiting order is unspecified and may change after a resize.
//   - The table must not be modified from inside yield.
func (t *HashTable[K, V]) Range(yield func(key K, value V) bool) {
	for _, chain := range t.buckets {
		for i := range chain {
			if !yield(chain[i].Key, chain[i].Value) {
				return
			}
		}
	}
}

// All is the iterator version of Range.
func (t *HashTable[K, V]) All() func(yield func(K, V) bool) {
	return t.Range
}

// Keys is the iterator version for iterating over all keys.
func (t *HashTable[K, V]) Keys() func(yield func(K) bool) {
	return func(yield func(K) bool) {
		t.Range(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Values is the iterator version for iterating over all values.
func (t *HashTable[K, V]) Values() func(yield func(V) bool) {
	return func(yield func(V) bool) {
		t.Range(func(_ K, value V) bool {
			return yield(value)
		})
	}
}

// ToMap collects all mappings into a map[K]V.
func (t *HashTable[K, V]) ToMap() map[K]V {
	return t.toMapWithLimit(-1)
}

// toMapWithLimit collects up to limit mappings, limit < 0 is no limit.
func (t *HashTable[K, V]) toMapWithLimit(limit int) map[K]V {
	if limit == 0 {
		return map[K]V{}
	}
	if limit < 0 {
		limit = math.MaxInt
	}
	a := make(map[K]V, min(t.count, limit))
	t.Range(func(key K, value V) bool {
		a[key] = value
		limit--
		return limit > 0
	})
	return a
}

// String implements fmt.Stringer. At most 1024 mappings are printed.
func (t *HashTable[K, V]) String() string {
	const limit = 1024
	return strings.Replace(fmt.Sprint(t.toMapWithLimit(limit)), "map[", "HashTable[", 1)
}
