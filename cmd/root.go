/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"example.com/Goodness/cmd/version"
	"example.com/Goodness/utils"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goodness [command] [flags]",
	Short: "goodness是一个哈希扩散参数的模拟退火实验工具",
	Long: `goodness通过模拟退火搜索哈希扩散函数的四个位移参数,
使词表装入哈希表后的桶冲突数尽可能少。

它对每个单词计算32位基础哈希值(算法可选),经过四参数异或移位
扩散变换后按位掩码装桶,以桶冲突数作为能量,在四维位移参数空间中
退火搜索,并与Java HashMap使用的基准参数{20,12,7,4}进行对比。`,
	Run: func(cmd *cobra.Command, args []string) {
		versionFlag, _ := cmd.Flags().GetBool("version")
		if versionFlag {
			version.PrintFullVersion()
			os.Exit(0)
		}
		cmd.Help() // 显示帮助信息
		os.Exit(0)
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debugFlag, _ := cmd.Flags().GetBool("debug")
		if debugFlag {
			// 开启调试模式,输出每次run的详细参数
			utils.SetLogLevel("debug")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "显示版本信息")
	rootCmd.PersistentFlags().Bool("debug", false, "开启调试模式")
}
