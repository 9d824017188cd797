package config

import (
	"fmt"

	"example.com/Goodness/pkg/collision"
	"example.com/Goodness/pkg/hashing"
)

// Experiment 对应 yaml 配置文件的顶层结构，
// 描述一次完整实验：词表、哈希算法、各个表大小和退火参数
type Experiment struct {
	Wordlist string             `yaml:"wordlist"` // 词表路径
	Hash     string             `yaml:"hash"`     // 基础哈希算法名
	Metric   string             `yaml:"metric"`   // 能量计量方式 total/average
	Sizes    []uint32           `yaml:"sizes"`    // 哈希表大小列表，必须都是 2 的幂
	Kmax     int                `yaml:"kmax"`     // 迭代预算
	Emax     float64            `yaml:"emax"`     // 能量下限，达到即提前结束
	Seed     hashing.ShiftState `yaml:"seed"`     // 初始状态
	Workers  int                `yaml:"workers"`  // 并行run数，0 表示与 sizes 数量一致
}

// Default 返回默认实验配置
// 表大小沿用原始方案的 2^20，初始状态从全 1 出发
func Default() *Experiment {
	return &Experiment{
		Wordlist: "words",
		Hash:     "java",
		Metric:   string(collision.MetricTotal),
		Sizes:    []uint32{1 << 16, 1 << 18, 1 << 20},
		Kmax:     100000,
		Emax:     0,
		Seed:     hashing.ShiftState{A: 1, B: 1, C: 1, D: 1},
	}
}

// Validate 在任何迭代开始前做快速失败检查
func (e *Experiment) Validate() error {
	if e.Wordlist == "" {
		return fmt.Errorf("wordlist path is empty")
	}
	if _, err := hashing.ByName(e.Hash); err != nil {
		return err
	}
	if _, err := collision.ParseMetric(e.Metric); err != nil {
		return err
	}
	if len(e.Sizes) == 0 {
		return fmt.Errorf("no table sizes configured")
	}
	for _, size := range e.Sizes {
		if !hashing.IsPowerOfTwo(size) {
			return fmt.Errorf("table size %d is not a power of two", size)
		}
	}
	if e.Kmax < 0 {
		return fmt.Errorf("kmax must not be negative, got %d", e.Kmax)
	}
	if e.Emax < 0 {
		return fmt.Errorf("emax must not be negative, got %v", e.Emax)
	}
	if e.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", e.Workers)
	}
	return e.Seed.Validate()
}
