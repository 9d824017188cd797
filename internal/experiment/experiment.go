// Package experiment 驱动多表大小的对比实验：
// 对每个表大小各跑一次独立的退火搜索，并与基准参数 {20,12,7,4} 对比
package experiment

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"example.com/Goodness/pkg/annealing"
	"example.com/Goodness/pkg/collision"
	"example.com/Goodness/pkg/hashing"
	"example.com/Goodness/utils"
)

// Run 是单个表大小上的一次搜索结果
type Run struct {
	Size            uint32
	Best            hashing.ShiftState
	BestEnergy      float64
	SeedEnergy      float64
	ReferenceEnergy float64 // 基准参数在同一表大小下的能量
	Iterations      int
	Elapsed         time.Duration
}

// Improved 报告最优解是否严格优于基准参数
func (r Run) Improved() bool {
	return r.BestEnergy < r.ReferenceEnergy
}

// Driver 持有所有run共享的只读输入和退火参数。
// Hashes 在构建后不再修改，可以被各 goroutine 无锁共享
type Driver struct {
	Hashes  collision.BaseHashSet
	Metric  collision.Metric
	Seed    hashing.ShiftState
	Kmax    int
	Emax    float64
	Workers int   // 最大并行run数，0 表示不限制
	RNGSeed int64 // 随机源种子，0 表示取当前时间
}

// Execute 并行跑完所有表大小，结果按 sizes 的顺序返回。
// 每个run使用独立的随机源(种子错开)，互不影响，便于复现
func (d *Driver) Execute(ctx context.Context, sizes []uint32) ([]Run, error) {
	base := d.RNGSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	results := make([]Run, len(sizes))

	g, ctx := errgroup.WithContext(ctx)
	if d.Workers > 0 {
		g.SetLimit(d.Workers)
	}
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			start := time.Now()
			eval := collision.Evaluator(d.Hashes, size, d.Metric)
			rng := rand.New(rand.NewSource(base + int64(i)))

			utils.Logger.Debug("annealing run started",
				"size", size, "kmax", d.Kmax, "seed", d.Seed.String())

			res, err := annealing.Anneal(ctx, d.Seed, annealing.Evaluator[hashing.ShiftState](eval),
				hashing.NeighborShift, annealing.Options[hashing.ShiftState]{
					Kmax: d.Kmax,
					Emax: d.Emax,
					RNG:  rng,
				})
			if err != nil {
				return err
			}

			// 每个 goroutine 只写自己的槽位，不需要加锁
			results[i] = Run{
				Size:            size,
				Best:            res.State,
				BestEnergy:      res.Energy,
				SeedEnergy:      eval(d.Seed),
				ReferenceEnergy: eval(hashing.ReferenceState),
				Iterations:      res.Iterations,
				Elapsed:         time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
