package cmd

import (
	"fmt"
	"strconv"

	cmdutils "example.com/Goodness/cmd/utils"
	"example.com/Goodness/pkg/hashing"
	"example.com/Goodness/pkg/utils/file"
	"example.com/Goodness/pkg/wordlist"
	"example.com/Goodness/utils"
	"github.com/spf13/cobra"
)

var (
	hashOutput  string
	hashVariant string
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash [flags] [wordlist]",
	Short: "计算词表的基础哈希值并逐行输出",
	Long: `对词表中的每个单词计算32位基础哈希值,逐行输出。
用法示例:
goodness hash words
goodness hash --hash fnv -o hashed words
goodness hash -o - words

输出路径为-时打印到标准输出,否则写入文件(默认hashed)。`,
	Args: cmdutils.MaxOneArg(),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "words"
		if len(args) == 1 {
			path = args[0]
		}

		fn, err := hashing.ByName(hashVariant)
		if err != nil {
			return err
		}
		words, err := wordlist.Load(path)
		if err != nil {
			return err
		}

		lines := make([]string, len(words))
		for i, w := range words {
			lines[i] = strconv.FormatUint(uint64(fn(w)), 10)
		}

		if hashOutput == "-" {
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		}
		if err := file.WriteLines(hashOutput, lines, 0644); err != nil {
			return err
		}
		utils.Logger.Info("hash codes written", "path", hashOutput, "count", len(lines))
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVarP(&hashOutput, "output", "o", "hashed", "输出文件路径,-表示标准输出")
	hashCmd.Flags().StringVar(&hashVariant, "hash", "java", "基础哈希算法(java/additive/fnv/murmur3/xxhash)")
	rootCmd.AddCommand(hashCmd)
}
