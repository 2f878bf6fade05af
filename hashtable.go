package hashtable

import (
	"math/rand/v2"
	"reflect"
	"slices"

	"github.com/pkg/errors"
)

const (
	// DefaultCapacity is the number of bucket slots a table created by New
	// starts with.
	DefaultCapacity = 64
	// defaultGrowthThreshold is the load factor, in percent, that triggers a
	// doubling of the table after an insertion.
	defaultGrowthThreshold = 80
)

// HashTable is a separate-chaining hash table mapping unique keys to values.
//
// Each bucket slot holds a chain of entries in insertion order. Chains are
// allocated lazily on the first insertion at their index and released when
// their last entry is removed. After every insertion the table doubles its
// capacity and rehashes all entries once the load factor reaches the growth
// threshold (80% unless configured with WithGrowthThreshold), so it never
// stays at or above the threshold between calls.
//
// Keys hash through their own Hash method when K implements Hashable, or
// through Go's built-in map hasher otherwise. Keys are compared with ==.
//
// The zero HashTable is empty and ready for use; it allocates
// DefaultCapacity slots with default options on first use.
//
// A HashTable is not safe for concurrent use. Callers sharing a table
// between goroutines must serialize every call themselves.
type HashTable[K comparable, V any] struct {
	buckets   [][]entry[K, V]
	count     int
	seed      uintptr
	keyHash   keyHashFunc[K]
	keyKind   reflect.Kind
	chainCap  int
	threshold int
	growths   uint32
}

// entry is an immutable key-value pair stored in a HashTable chain.
type entry[K comparable, V any] struct {
	Key   K
	Value V
}

// New creates a HashTable with DefaultCapacity bucket slots.
func New[K comparable, V any](options ...func(*Config)) *HashTable[K, V] {
	t := &HashTable[K, V]{}
	t.init(DefaultCapacity, options)
	return t
}

// NewWithCapacity creates a HashTable with the given number of bucket slots.
// It returns ErrInvalidArgument if capacity is not positive.
func NewWithCapacity[K comparable, V any](
	capacity int,
	options ...func(*Config),
) (*HashTable[K, V], error) {
	if capacity <= 0 {
		return nil, errors.WithMessagef(ErrInvalidArgument, "capacity %d must be positive", capacity)
	}
	t := &HashTable[K, V]{}
	t.init(capacity, options)
	return t, nil
}

func (t *HashTable[K, V]) init(capacity int, options []func(*Config)) {
	var cfg Config
	for _, opt := range options {
		opt(&cfg)
	}

	t.buckets = make([][]entry[K, V], capacity)
	t.seed = uintptr(rand.Uint64())
	t.keyHash = defaultKeyHash[K]()
	t.keyKind = reflect.TypeFor[K]().Kind()
	t.chainCap = entriesPerCacheLine[entry[K, V]]()
	t.threshold = cfg.threshold()
}

// lazyInit sets up a zero HashTable on its first use.
func (t *HashTable[K, V]) lazyInit() {
	if t.keyHash == nil {
		t.init(DefaultCapacity, nil)
	}
}

// index reduces the key's hash to a slot of a table with tableLen slots.
// The hash is unsigned, so the result is in range for every hash value.
func (t *HashTable[K, V]) index(key *K, tableLen int) int {
	return int(t.keyHash(key, t.seed) % uintptr(tableLen))
}

// Put adds a new mapping for key. It returns ErrNullKey if key is nil and
// ErrDuplicateKey if key is already mapped; in both cases the table is left
// untouched. Existing mappings are never overwritten.
func (t *HashTable[K, V]) Put(key K, value V) error {
	t.lazyInit()
	if t.isNilKey(key) {
		return ErrNullKey
	}
	idx := t.index(&key, len(t.buckets))
	chain := t.buckets[idx]
	if lookup(chain, key) >= 0 {
		return errors.WithMessagef(ErrDuplicateKey, "put %v", key)
	}
	if chain == nil {
		chain = make([]entry[K, V], 0, t.chainCap)
	}
	t.buckets[idx] = append(chain, entry[K, V]{Key: key, Value: value})
	t.count++

	for t.overloaded() {
		t.rehash(len(t.buckets) << 1)
	}
	return nil
}

// overloaded reports whether the load factor is at or above the threshold.
func (t *HashTable[K, V]) overloaded() bool {
	return t.count*100 >= t.threshold*len(t.buckets)
}

// rehash moves every entry into a fresh table of newLen slots, walking old
// slots in order and each chain in insertion order, then swaps it in.
func (t *HashTable[K, V]) rehash(newLen int) {
	buckets := make([][]entry[K, V], newLen)
	for _, chain := range t.buckets {
		for _, e := range chain {
			idx := t.index(&e.Key, newLen)
			if buckets[idx] == nil {
				buckets[idx] = make([]entry[K, V], 0, t.chainCap)
			}
			buckets[idx] = append(buckets[idx], e)
		}
	}
	t.buckets = buckets
	t.growths++
}

// ContainsKey reports whether key is mapped. A nil key is never mapped.
func (t *HashTable[K, V]) ContainsKey(key K) bool {
	t.lazyInit()
	if t.isNilKey(key) {
		return false
	}
	return lookup(t.buckets[t.index(&key, len(t.buckets))], key) >= 0
}

// Get returns the value mapped to key, or ErrKeyNotFound if key is nil or
// not mapped.
func (t *HashTable[K, V]) Get(key K) (value V, err error) {
	t.lazyInit()
	if t.isNilKey(key) {
		return value, errors.WithMessage(ErrKeyNotFound, "get nil key")
	}
	chain := t.buckets[t.index(&key, len(t.buckets))]
	i := lookup(chain, key)
	if i < 0 {
		return value, errors.WithMessagef(ErrKeyNotFound, "get %v", key)
	}
	return chain[i].Value, nil
}

// Remove deletes the mapping for key and returns its value. It returns
// ErrKeyNotFound if key is nil or not mapped. The remaining entries of the
// chain keep their relative order.
func (t *HashTable[K, V]) Remove(key K) (value V, err error) {
	t.lazyInit()
	if t.isNilKey(key) {
		return value, errors.WithMessage(ErrKeyNotFound, "remove nil key")
	}
	idx := t.index(&key, len(t.buckets))
	chain := t.buckets[idx]
	i := lookup(chain, key)
	if i < 0 {
		return value, errors.WithMessagef(ErrKeyNotFound, "remove %v", key)
	}
	value = chain[i].Value
	if len(chain) == 1 {
		t.buckets[idx] = nil
	} else {
		t.buckets[idx] = slices.Delete(chain, i, i+1)
	}
	t.count--
	return value, nil
}

// Clear removes all mappings. The capacity is unchanged.
func (t *HashTable[K, V]) Clear() {
	clear(t.buckets)
	t.count = 0
}

// Size returns the number of mappings. This is an O(1) operation.
func (t *HashTable[K, V]) Size() int {
	return t.count
}

// Capacity returns the number of bucket slots.
func (t *HashTable[K, V]) Capacity() int {
	t.lazyInit()
	return len(t.buckets)
}

// LoadFactor returns Size()/Capacity().
func (t *HashTable[K, V]) LoadFactor() float64 {
	t.lazyInit()
	return float64(t.count) / float64(len(t.buckets))
}

// lookup returns the position of key in chain, or -1.
func lookup[K comparable, V any](chain []entry[K, V], key K) int {
	for i := range chain {
		if chain[i].Key == key {
			return i
		}
	}
	return -1
}
