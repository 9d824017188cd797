package utils

import (
	"fmt"

	"example.com/Goodness/pkg/hashing"
	"github.com/spf13/cobra"
)

// MaxOneArg 限制命令最多接受一个位置参数(词表路径)
func MaxOneArg() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return fmt.Errorf("最多接受一个词表路径参数")
		}
		return nil
	}
}

// ParseSeed 把 --seed a,b,c,d 解析为初始状态
func ParseSeed(vals []uint) (hashing.ShiftState, error) {
	if len(vals) != 4 {
		return hashing.ShiftState{}, fmt.Errorf("--seed 需要恰好4个位移量, 收到%d个", len(vals))
	}
	s := hashing.ShiftState{A: vals[0], B: vals[1], C: vals[2], D: vals[3]}
	return s, s.Validate()
}
