package hashing

import "fmt"

// MaxShift 是单个位移量的上限(32 位字)
const MaxShift = 31

// ShiftState 是扩散变换的四个位移参数，即搜索空间中的一个候选解。
// 值语义：每次扰动都产生新副本，绝不原地修改
type ShiftState struct {
	A uint `yaml:"a"`
	B uint `yaml:"b"`
	C uint `yaml:"c"`
	D uint `yaml:"d"`
}

// ReferenceState 是 Java HashMap 扩散函数使用的参数，作为对比基准
var ReferenceState = ShiftState{A: 20, B: 12, C: 7, D: 4}

// Validate 检查四个位移量是否都落在 [0, MaxShift] 内
func (s ShiftState) Validate() error {
	for _, f := range []struct {
		name  string
		value uint
	}{{"a", s.A}, {"b", s.B}, {"c", s.C}, {"d", s.D}} {
		if f.value > MaxShift {
			return fmt.Errorf("shift %s=%d out of range [0,%d]", f.name, f.value, MaxShift)
		}
	}
	return nil
}

func (s ShiftState) String() string {
	return fmt.Sprintf("{%d,%d,%d,%d}", s.A, s.B, s.C, s.D)
}

// Spread 对基础哈希值做两轮异或移位混合，
// 把高位的信息扩散到低位，降低按掩码取桶时的冲突。
// 纯函数，位移量为 0 的项是恒等项
func Spread(h uint32, s ShiftState) uint32 {
	h = h ^ (h >> s.A) ^ (h >> s.B)
	return h ^ (h >> s.C) ^ (h >> s.D)
}
