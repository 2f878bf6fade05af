package hashtable

import (
	"math/bits"
	"reflect"
	"unsafe"
)

// Hashable is implemented by key types that provide their own hash.
// Keys that are equal under == must return the same hash.
type Hashable interface {
	Hash() uint64
}

var hashableType = reflect.TypeFor[Hashable]()

type keyHashFunc[K comparable] func(key *K, seed uintptr) uintptr

type hashFunc func(unsafe.Pointer, uintptr) uintptr

// defaultKeyHash picks the key's own Hash method when K implements
// Hashable, and the runtime's hasher for K otherwise.
func defaultKeyHash[K comparable]() keyHashFunc[K] {
	if reflect.TypeFor[K]().Implements(hashableType) {
		return func(key *K, _ uintptr) uintptr {
			return uintptr(any(*key).(Hashable).Hash())
		}
	}
	hash := defaultHasher[K]()
	return func(key *K, seed uintptr) uintptr {
		return hash(noescape(unsafe.Pointer(key)), seed)
	}
}

// defaultHasher returns identity hashing for integer kinds, which keeps
// their bucket index stable across tables, and the built-in map hasher for
// everything else.
func defaultHasher[K comparable]() hashFunc {
	switch any(*new(K)).(type) {
	case uint, int, uintptr:
		return func(value unsafe.Pointer, _ uintptr) uintptr {
			return *(*uintptr)(value)
		}

	case uint64, int64:
		if bits.UintSize == 32 {
			return func(value unsafe.Pointer, _ uintptr) uintptr {
				v := *(*uint64)(value)
				return uintptr(v) ^ uintptr(v>>32)
			}
		}
		return func(value unsafe.Pointer, _ uintptr) uintptr {
			return uintptr(*(*uint64)(value))
		}

	case uint32, int32:
		return func(value unsafe.Pointer, _ uintptr) uintptr {
			return uintptr(*(*uint32)(value))
		}

	case uint16, int16:
		return func(value unsafe.Pointer, _ uintptr) uintptr {
			return uintptr(*(*uint16)(value))
		}

	case uint8, int8:
		return func(value unsafe.Pointer, _ uintptr) uintptr {
			return uintptr(*(*uint8)(value))
		}

	default:
		return builtInHasher[K]()
	}
}

// builtInHasher obtains the hash function Go's runtime uses for map[K]
// keys, read from the map type descriptor.
//
// Notes:
//   - This relies on the runtime's internal type layout, mirrored by
//     iType and iMapType below, which must be checked on Go upgrades
func builtInHasher[K comparable]() hashFunc {
	var m map[K]struct{}
	return iTypeOf(m).MapType().Hasher
}

// isNilKey reports whether key is a nil interface, pointer, channel or
// unsafe.Pointer. Keys of other kinds are never nil.
func (t *HashTable[K, V]) isNilKey(key K) bool {
	switch t.keyKind {
	case reflect.Interface:
		return any(key) == nil
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return reflect.ValueOf(any(key)).IsNil()
	default:
		return false
	}
}

type iTFlag uint8
type iKind uint8
type iNameOff int32

// iTypeOff is the offset to a type from moduledata.types.
type iTypeOff int32

// iType mirrors the runtime's abi.Type header. Only its size matters here:
// it fixes the offset of the map-specific fields of iMapType.
type iType struct {
	Size_       uintptr
	PtrBytes    uintptr // number of (prefix) bytes in the type that can contain pointers
	Hash        uint32  // hash of type; avoids computation in hash tables
	TFlag       iTFlag  // extra type information flags
	Align_      uint8   // alignment of variable with this type
	FieldAlign_ uint8   // alignment of struct field with this type
	Kind_       iKind   // enumeration for C
	// function for comparing objects of this type
	// (ptr to object A, ptr to object B) -> ==?
	Equal     func(unsafe.Pointer, unsafe.Pointer) bool
	GCData    *byte    // GC type data, a ptr/nonptr bitmask
	Str       iNameOff // string form
	PtrToThis iTypeOff // type for pointer to this type, may be zero
}

func (t *iType) MapType() *iMapType {
	return (*iMapType)(unsafe.Pointer(t))
}

// iMapType mirrors the runtime map type header. The third pointer is the
// bucket type before Go 1.24 and the slot group type after; only Hasher is
// read.
type iMapType struct {
	iType
	Key    *iType
	Elem   *iType
	Bucket *iType
	// function for hashing keys (ptr to key, seed) -> hash
	Hasher func(unsafe.Pointer, uintptr) uintptr
}

// iTypeOf returns the type descriptor of a's dynamic type. Type descriptors
// are statically allocated or kept alive by the runtime, so the pointer does
// not need to escape.
func iTypeOf(a any) *iType {
	eface := *(*iEmptyInterface)(unsafe.Pointer(&a))
	return (*iType)(noescape(unsafe.Pointer(eface.Type)))
}

type iEmptyInterface struct {
	Type *iType
	Data unsafe.Pointer
}

// noescape hides a pointer from escape analysis. It is the identity
// function and compiles down to zero instructions.
// USE CAREFULLY!
//
//go:nosplit
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
