package hashtable

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the CPU cache line size in bytes.
// It's automatically calculated using the `golang.org/x/sys` package.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// entriesPerCacheLine returns how many values of E fit in one cache line,
// at least one. New chains reserve this many entries up front.
func entriesPerCacheLine[E any]() int {
	size := unsafe.Sizeof(*new(E))
	if size == 0 || size >= CacheLineSize {
		return 1
	}
	return int(CacheLineSize / size)
}
