package hashing

import "math/rand"

// 单步扰动的最大幅度
const maxNeighborStep = 6

// NeighborShift 生成当前状态的一个随机邻居：
// 等概率选择四个位移量之一，等概率选择增减方向，
// 幅度在 {1..6} 中均匀抽取，结果饱和截断到 [0, MaxShift]
// (截断而非回绕)。不修改传入的状态
func NeighborShift(s ShiftState, rng *rand.Rand) ShiftState {
	delta := 1 + rng.Intn(maxNeighborStep)
	if rng.Intn(2) == 0 {
		delta = -delta
	}

	apply := func(v uint) uint {
		n := int(v) + delta
		if n < 0 {
			n = 0
		} else if n > MaxShift {
			n = MaxShift
		}
		return uint(n)
	}

	switch rng.Intn(4) {
	case 0:
		s.A = apply(s.A)
	case 1:
		s.B = apply(s.B)
	case 2:
		s.C = apply(s.C)
	default:
		s.D = apply(s.D)
	}
	return s
}
