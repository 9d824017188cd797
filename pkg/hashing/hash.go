package hashing

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Func 把一个单词映射为 32 位基础哈希值
type Func func(word string) uint32

// ==========================================
// 基础哈希算法 (Base Hash Functions)
// ==========================================

// JavaHash 即 Java String.hashCode 的多项式哈希: h = 31*h + c
// 空字符串的哈希值为 0，运算按 uint32 回绕
func JavaHash(word string) uint32 {
	var h uint32
	for i := 0; i < len(word); i++ {
		h = 31*h + uint32(word[i])
	}
	return h
}

// AdditiveHash 只做累加，不乘系数: h = h + c
// 分布极差，冲突严重，仅用作能量地形的对照组
func AdditiveHash(word string) uint32 {
	var h uint32
	for i := 0; i < len(word); i++ {
		h += uint32(word[i])
	}
	return h
}

// FNVHash 标准 FNV-1a 哈希，分布均匀，是处理字符串的常见选择
func FNVHash(word string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(word))
	return h.Sum32()
}

// Murmur3Hash 32 位 murmur3
func Murmur3Hash(word string) uint32 {
	return murmur3.Sum32([]byte(word))
}

// XXHash 64 位 xxhash 折叠为 32 位
// 异或高低位，保证高位变化也能影响结果
func XXHash(word string) uint32 {
	h := xxhash.Sum64String(word)
	return uint32(h ^ (h >> 32))
}

var variants = map[string]Func{
	"java":     JavaHash,
	"additive": AdditiveHash,
	"fnv":      FNVHash,
	"murmur3":  Murmur3Hash,
	"xxhash":   XXHash,
}

// Names 返回所有已注册的哈希算法名(有序)
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByName 按名称查找哈希算法
func ByName(name string) (Func, error) {
	fn, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown hash %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return fn, nil
}
