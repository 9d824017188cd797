package cmd

import (
	"context"
	"fmt"
	"time"

	cmdutils "example.com/Goodness/cmd/utils"
	"example.com/Goodness/internal/experiment"
	"example.com/Goodness/pkg/collision"
	"example.com/Goodness/pkg/config"
	"example.com/Goodness/pkg/hashing"
	"example.com/Goodness/pkg/wordlist"
	"example.com/Goodness/utils"
	"github.com/spf13/cobra"
)

type ExperimentOptions struct {
	ConfigFile string
	RNGSeed    int64

	cfg *config.Experiment
}

func NewCmdExperiment() *cobra.Command {
	o := &ExperimentOptions{}
	cmd := &cobra.Command{
		Use:     "experiment [flags] [wordlist]",
		Aliases: []string{"all"},
		Short:   "在所有配置的表大小上并行跑退火实验",
		Long: `按配置文件(或默认配置)在每个表大小上各跑一次独立的退火搜索,
汇总各自的最优参数并与基准参数{20,12,7,4}对比。
用法示例:
goodness experiment words
goodness experiment -c experiment.yaml
goodness all --rng-seed 42 words

位置参数提供的词表路径会覆盖配置文件里的wordlist。`,
		Args: cmdutils.MaxOneArg(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(args); err != nil {
				return err
			}
			if err := o.cfg.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().StringVarP(&o.ConfigFile, "config", "c", "", "实验配置文件(yaml)")
	cmd.Flags().Int64Var(&o.RNGSeed, "rng-seed", 0, "随机源种子,0表示取当前时间")

	return cmd
}

func (o *ExperimentOptions) Complete(args []string) error {
	if o.ConfigFile != "" {
		cfg, err := config.NewDefaultStore(o.ConfigFile).Load()
		if err != nil {
			return err
		}
		o.cfg = cfg
	} else {
		o.cfg = config.Default()
	}
	if len(args) == 1 {
		o.cfg.Wordlist = args[0]
	}
	return nil
}

func (o *ExperimentOptions) Run() error {
	cfg := o.cfg
	words, err := wordlist.Load(cfg.Wordlist)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("词表 %s 为空", cfg.Wordlist)
	}

	hashFn, err := hashing.ByName(cfg.Hash)
	if err != nil {
		return err
	}
	metric, err := collision.ParseMetric(cfg.Metric)
	if err != nil {
		return err
	}

	utils.Logger.Debug("experiment parameters",
		"wordlist", cfg.Wordlist, "words", len(words), "sizes", cfg.Sizes,
		"hash", cfg.Hash, "metric", cfg.Metric, "kmax", cfg.Kmax)

	driver := &experiment.Driver{
		Hashes:  collision.NewBaseHashSet(words, hashFn),
		Metric:  metric,
		Seed:    cfg.Seed,
		Kmax:    cfg.Kmax,
		Emax:    cfg.Emax,
		Workers: cfg.Workers,
		RNGSeed: o.RNGSeed,
	}

	start := time.Now()
	runs, err := driver.Execute(context.Background(), cfg.Sizes)
	if err != nil {
		return err
	}

	fmt.Printf("--- 实验结果 (words=%d, hash=%s, metric=%s, kmax=%d, 用时%v) ---\n",
		len(words), cfg.Hash, cfg.Metric, cfg.Kmax, time.Since(start).Round(time.Millisecond))
	improved := 0
	for _, r := range runs {
		status := "未超过基准"
		if r.Improved() {
			status = "优于基准"
			improved++
		}
		fmt.Printf("size=%-8d best=%s e=%.4f 基准e=%.4f 初始e=%.4f 迭代=%d 用时=%v %s\n",
			r.Size, r.Best, r.BestEnergy, r.ReferenceEnergy, r.SeedEnergy, r.Iterations,
			r.Elapsed.Round(time.Millisecond), status)
	}
	fmt.Printf("共%d个表大小, %d个找到优于基准的参数\n", len(runs), improved)
	return nil
}

func init() {
	rootCmd.AddCommand(NewCmdExperiment())
}
