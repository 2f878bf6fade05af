package hashtable

import (
	"testing"
)

func BenchmarkHashTablePutSmall(b *testing.B) {
	benchmarkHashTablePut(b, testDataSmall[:])
}

func BenchmarkHashTablePut(b *testing.B) {
	benchmarkHashTablePut(b, testData[:])
}

func BenchmarkHashTablePutLarge(b *testing.B) {
	benchmarkHashTablePut(b, testDataLarge[:])
}

func benchmarkHashTablePut(b *testing.B, data []string) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ht := New[string, int]()
		for j := range data {
			_ = ht.Put(data[j], j)
		}
	}
}

func BenchmarkHashTableGet(b *testing.B) {
	benchmarkHashTableGet(b, testData[:])
}

func BenchmarkHashTableGetLarge(b *testing.B) {
	benchmarkHashTableGet(b, testDataLarge[:])
}

func benchmarkHashTableGet(b *testing.B, data []string) {
	b.ReportAllocs()
	ht := New[string, int]()
	for i := range data {
		_ = ht.Put(data[i], i)
	}
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_, _ = ht.Get(data[i])
		i++
		if i >= len(data) {
			i = 0
		}
	}
}

func BenchmarkHashTableIntPutRemove(b *testing.B) {
	b.ReportAllocs()
	ht := New[int, int]()
	for i := range testDataIntLarge {
		_ = ht.Put(testDataIntLarge[i], i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		k := testDataIntLarge[n%len(testDataIntLarge)]
		v, _ := ht.Remove(k)
		_ = ht.Put(k, v)
	}
}
