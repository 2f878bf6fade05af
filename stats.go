package hashtable

import (
	"fmt"
	"math"
	"strings"
)

// Stats returns statistics for the HashTable. It's an O(N) operation,
// so it should be used only for diagnostics or debugging purposes.
func (t *HashTable[K, V]) Stats() *Stats {
	t.lazyInit()
	stats := &Stats{
		Capacity:        len(t.buckets),
		Counter:         t.count,
		MinEntries:      math.MaxInt,
		TotalGrowths:    t.growths,
		GrowthThreshold: t.threshold,
	}
	for _, chain := range t.buckets {
		if chain != nil {
			stats.AllocatedBuckets++
		}
		n := len(chain)
		stats.Size += n
		if n == 0 {
			stats.EmptyBuckets++
		}
		stats.MinEntries = min(stats.MinEntries, n)
		stats.MaxEntries = max(stats.MaxEntries, n)
	}
	return stats
}

// Stats is HashTable statistics.
//
// Warning: table statistics are intended to be used for diagnostic
// purposes, not for production code. This means that breaking changes
// may be introduced into this struct even between minor releases.
type Stats struct {
	// Capacity is the number of bucket slots.
	Capacity int
	// AllocatedBuckets is the number of slots holding a chain.
	AllocatedBuckets int
	// EmptyBuckets is the number of slots that hold no entries.
	EmptyBuckets int
	// Size is the number of entries found by walking every chain.
	Size int
	// Counter is the number of entries according to the table's counter.
	// It always equals Size.
	Counter int
	// MinEntries is the length of the shortest chain.
	MinEntries int
	// MaxEntries is the length of the longest chain.
	MaxEntries int
	// TotalGrowths is the number of times the table doubled.
	TotalGrowths uint32
	// GrowthThreshold is the load factor, in percent, that triggers growth.
	GrowthThreshold int
}

// ToString returns string representation of table stats.
func (s *Stats) ToString() string {
	var sb strings.Builder
	sb.WriteString("Stats{\n")
	sb.WriteString(fmt.Sprintf("Capacity:         %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("AllocatedBuckets: %d\n", s.AllocatedBuckets))
	sb.WriteString(fmt.Sprintf("EmptyBuckets:     %d\n", s.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("Size:             %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:          %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("MinEntries:       %d\n", s.MinEntries))
	sb.WriteString(fmt.Sprintf("MaxEntries:       %d\n", s.MaxEntries))
	sb.WriteString(fmt.Sprintf("TotalGrowths:     %d\n", s.TotalGrowths))
	sb.WriteString(fmt.Sprintf("GrowthThreshold:  %d\n", s.GrowthThreshold))
	sb.WriteString("}\n")
	return sb.String()
}
