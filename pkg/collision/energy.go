// Package collision 定义退火搜索的能量函数：
// 给定一组基础哈希值和一个候选位移参数，统计装桶后的冲突数
package collision

import (
	"fmt"

	"example.com/Goodness/pkg/hashing"
)

// Metric 决定能量的计量方式
type Metric string

const (
	// MetricTotal 返回所有桶的冲突总数(整数值，与表占用率无关)
	MetricTotal Metric = "total"
	// MetricAverage 返回冲突总数除以被占用的桶数，
	// 即平均每个非空桶的冲突数。绝对尺度随占用率变化，
	// 相同温度下接受概率的表现与 total 不同
	MetricAverage Metric = "average"
)

// ParseMetric 校验并返回计量方式
func ParseMetric(name string) (Metric, error) {
	switch Metric(name) {
	case MetricTotal, MetricAverage:
		return Metric(name), nil
	}
	return "", fmt.Errorf("unknown metric %q (known: total, average)", name)
}

// BaseHashSet 是词表经基础哈希得到的哈希值序列。
// 整个实验开始时构建一次，之后只读，
// 可以安全地被多个并行退火run共享
type BaseHashSet []uint32

// NewBaseHashSet 用指定的基础哈希算法处理整个词表
func NewBaseHashSet(words []string, fn hashing.Func) BaseHashSet {
	hs := make(BaseHashSet, len(words))
	for i, w := range words {
		hs[i] = fn(w)
	}
	return hs
}

// Energy 计算候选状态的能量：对每个基础哈希值做扩散和装桶，
// 每个桶的冲突数 = 占用数 - 1(第一个进桶的不算冲突)。
// 冲突表是每次调用临时新建的草稿结构，不跨调用保留。
// 返回值恒 >= 0
func Energy(hashes BaseHashSet, s hashing.ShiftState, size uint32, m Metric) float64 {
	occupancy := make(map[uint32]int, len(hashes))
	for _, h := range hashes {
		occupancy[hashing.BucketIndex(hashing.Spread(h, s), size)]++
	}

	collisions := 0
	for _, n := range occupancy {
		collisions += n - 1
	}

	if m == MetricAverage {
		if len(occupancy) == 0 {
			return 0
		}
		return float64(collisions) / float64(len(occupancy))
	}
	return float64(collisions)
}

// Evaluator 把 Energy 绑定成退火器可用的求值函数
func Evaluator(hashes BaseHashSet, size uint32, m Metric) func(hashing.ShiftState) float64 {
	return func(s hashing.ShiftState) float64 {
		return Energy(hashes, s, size, m)
	}
}
