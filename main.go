// Package main 是 Square Enclosing Line 的桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose           输出日志并在画面上显示调试信息
//	--fullscreen        全屏启动，表面尺寸取显示器尺寸
//	--config <path>     使用磁盘上的舞台配置代替嵌入的 data/stage.yaml
//
// Controls:
//
//	鼠标左键/触摸/Space  推进下一个节点
//	F11                  切换全屏
//	ESC                  退出
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/squareline/pkg/app"
	"github.com/decker502/squareline/pkg/embedded"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging and debug overlay")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen using the monitor size")
	configFlag     = flag.String("config", "", "Path to a stage config YAML (default: embedded data/stage.yaml)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Fullscreen: *fullscreenFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		// 非 verbose 模式下 log 已被丢弃，错误直接写到 stderr
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
