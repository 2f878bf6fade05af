package hashtable

import (
	"testing"
	"unsafe"
)

type structKey struct {
	Service  uint32
	Instance uint64
}

func TestDefaultHasher_IntIdentity(t *testing.T) {
	h := defaultHasher[int]()
	for _, v := range []int{0, 1, 42, -1} {
		if got := h(unsafe.Pointer(&v), 0); got != uintptr(v) {
			t.Fatalf("hash(%d) got %d, want %d", v, got, uintptr(v))
		}
	}
	h8 := defaultHasher[uint8]()
	b := uint8(200)
	if got := h8(unsafe.Pointer(&b), 0); got != 200 {
		t.Fatalf("hash(uint8 200) got %d", got)
	}
}

func TestDefaultHasher_BuiltIn(t *testing.T) {
	hs := defaultHasher[string]()
	a, b := "hello", string([]byte("hello"))
	if hs(unsafe.Pointer(&a), 7) != hs(unsafe.Pointer(&b), 7) {
		t.Fatalf("equal strings hashed differently")
	}

	hk := defaultHasher[structKey]()
	k1, k2 := structKey{1, 2}, structKey{1, 2}
	if hk(unsafe.Pointer(&k1), 3) != hk(unsafe.Pointer(&k2), 3) {
		t.Fatalf("equal structs hashed differently")
	}
}

func TestDefaultKeyHash_Hashable(t *testing.T) {
	h := defaultKeyHash[pointKey]()
	k := pointKey{3, 4}
	if got := h(&k, 99); got != uintptr(k.Hash()) {
		t.Fatalf("Hashable key not used: got %d, want %d", got, uintptr(k.Hash()))
	}
}

func TestHashTable_StructKeys(t *testing.T) {
	ht := New[structKey, string]()
	mustPut(t, ht, structKey{1, 2}, "a")
	mustPut(t, ht, structKey{2, 1}, "b")
	if v, err := ht.Get(structKey{1, 2}); err != nil || v != "a" {
		t.Fatalf("Get got (%v, %v)", v, err)
	}
}

func TestIsNilKey(t *testing.T) {
	x := 1
	pt := New[*int, int]()
	if !pt.isNilKey(nil) || pt.isNilKey(&x) {
		t.Fatalf("pointer nil detection failed")
	}
	ct := New[chan int, int]()
	if !ct.isNilKey(nil) || ct.isNilKey(make(chan int)) {
		t.Fatalf("channel nil detection failed")
	}
	it := New[any, int]()
	var np *int
	if !it.isNilKey(nil) || it.isNilKey(np) {
		t.Fatalf("interface nil detection failed")
	}
	nt := New[int, int]()
	if nt.isNilKey(0) {
		t.Fatalf("zero int must not be a nil key")
	}
}

func TestEntriesPerCacheLine(t *testing.T) {
	t.Logf("CacheLineSize : %d", CacheLineSize)
	n := entriesPerCacheLine[entry[int, int]]()
	if want := int(CacheLineSize / unsafe.Sizeof(entry[int, int]{})); n != max(1, want) {
		t.Fatalf("got %d, want %d", n, want)
	}
	if entriesPerCacheLine[struct{}]() != 1 {
		t.Fatalf("zero-size entries must reserve one slot")
	}
	if entriesPerCacheLine[[1024]byte]() != 1 {
		t.Fatalf("large entries must reserve one slot")
	}
}
