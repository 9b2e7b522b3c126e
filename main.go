// Package main 是靶场小游戏的桌面端和浏览器（wasm）入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          启用详细日志
//	--config <path>    使用磁盘上的靶场配置代替嵌入的 data/range.yaml
//	--seed <n>         固定随机数种子（0 = 使用当前时间）
//	--autostart        跳过开始界面直接进入练习
//
// Controls:
//
//	Mouse Click / Touch  - 射击（开始界面点击 PRACTICE，结算界面点击 AGAIN）
//	Escape               - 结束本局
//	F11                  - 切换全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/aimrange/pkg/app"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/embedded"
)

var (
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag    = flag.String("config", "", "Range config file on disk (default: embedded data/range.yaml)")
	seedFlag      = flag.Int64("seed", 0, "Random seed (0 = current time)")
	autoStartFlag = flag.Bool("autostart", false, "Skip the start screen")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
		AutoStart:  *autoStartFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Aim Range")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
