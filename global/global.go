package global

import (
	"golang.org/x/term"
)

var (
	IsTerminal bool = term.IsTerminal(1) //标准输出是否是交互式终端,false表示可能是管道或重定向,此时不渲染进度条
)
