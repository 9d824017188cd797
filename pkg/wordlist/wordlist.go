// Package wordlist 负责读入词表：按空白分隔的单词序列。
// 只在run开始前读一次，之后全程使用内存中的序列
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read 从 r 中读出所有按空白(空格/制表符/换行)分隔的单词
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	return words, nil
}

// Load 读取指定路径的词表文件
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	return Read(f)
}
