package hashing

import (
	"math"
	"testing"
)

func TestBucketIndexInRange(t *testing.T) {
	hs := []uint32{0, 1, 97, 12345, math.MaxUint32}
	for _, size := range []uint32{1, 2, 4, 1024, 1 << 20} {
		for _, h := range hs {
			idx := BucketIndex(h, size)
			if idx >= size {
				t.Errorf("BucketIndex(%d, %d) = %d, out of range", h, size, idx)
			}
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []uint32{1, 2, 4, 1024, 1 << 20, 1 << 31} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []uint32{0, 3, 6, 1000, 1<<20 + 1} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}
