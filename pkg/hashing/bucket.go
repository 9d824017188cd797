package hashing

// BucketIndex 用位掩码把哈希值压缩到 [0, size) 的桶下标。
// 调用方保证 size 是 2 的幂，这样掩码等价于取模但快得多
func BucketIndex(h, size uint32) uint32 {
	return h & (size - 1)
}

// IsPowerOfTwo 判断 n 是否为 2 的幂(0 不算)
func IsPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}
