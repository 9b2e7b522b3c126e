// Package main 提供无头靶场模拟工具
//
// 不创建窗口、不需要 GPU，按固定 tick 驱动一局练习，
// 由脚本化的瞄准器定时射击，结束后打印 HUD 统计。
// 用于调试配置参数和验证相同种子下结果可复现。
//
// Usage:
//
//	go run ./cmd/rangesim [flags]
//
// Flags:
//
//	--ticks <n>         模拟 tick 数（默认 3600 = 60 秒）
//	--seed <n>          随机数种子（默认 1）
//	--shoot-every <n>   每 n 个 tick 射击一次（默认 20）
//	--jitter <f>        瞄准误差标准差（模拟单位，默认 6）
//	--config <path>     靶场配置文件（默认使用内置默认值）
//	--persist           读写本地最高分记录
//	--verbose           启用详细日志
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/ecs"
	"github.com/decker502/aimrange/pkg/game"
	"github.com/decker502/aimrange/pkg/modules"
)

var (
	ticksFlag      = flag.Int("ticks", 3600, "Number of simulation ticks")
	seedFlag       = flag.Int64("seed", 1, "Random seed")
	shootEveryFlag = flag.Int("shoot-every", 20, "Shoot once every N ticks")
	jitterFlag     = flag.Float64("jitter", 6, "Aim error standard deviation (simulation units)")
	configFlag     = flag.String("config", "", "Range config file (default: built-in defaults)")
	persistFlag    = flag.Bool("persist", false, "Read and write the local best score record")
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// simOptions 一次模拟的参数
type simOptions struct {
	Ticks      int
	Seed       int64
	ShootEvery int
	Jitter     float64
	Config     *config.RangeConfig
	Store      game.BestScoreStore
}

// simResult 模拟结果
type simResult struct {
	HUD     modules.HUDSnapshot
	Taunts  int
	Escapes int
}

// aimer 脚本化瞄准器：瞄准最新生成的靶子，叠加高斯误差
type aimer struct {
	rng    *rand.Rand
	jitter float64
}

// aim 返回本次射击的模拟坐标
// 场上没有靶子时随机开一枪
func (a *aimer) aim(rs *game.RangeState) (float64, float64) {
	var target *components.TargetComponent
	rs.Targets.EachReverse(func(_ ecs.Index, t *components.TargetComponent) bool {
		target = t
		return false
	})

	if target == nil {
		return a.rng.Float64() * config.LogicalWidth, a.rng.Float64() * config.LogicalHeight
	}
	return target.X + a.rng.NormFloat64()*a.jitter, target.Y + a.rng.NormFloat64()*a.jitter
}

// runSimulation 运行一局无头模拟
func runSimulation(opts simOptions) (simResult, error) {
	if opts.ShootEvery <= 0 {
		return simResult{}, fmt.Errorf("shoot-every must be positive, got %d", opts.ShootEvery)
	}

	var result simResult
	session, err := modules.NewRangeSessionModule(opts.Config, rand.New(rand.NewSource(opts.Seed)), opts.Store, modules.RangeSessionCallbacks{
		OnEvent: func(e modules.RangeEvent) {
			switch e {
			case modules.EventTaunt:
				result.Taunts++
			case modules.EventEscape:
				result.Escapes++
			}
		},
	})
	if err != nil {
		return simResult{}, err
	}

	if err := session.Start(); err != nil {
		return simResult{}, err
	}

	// 瞄准器使用独立的随机数源，不干扰模拟本身的随机序列
	a := &aimer{rng: rand.New(rand.NewSource(opts.Seed + 1)), jitter: opts.Jitter}
	for tick := 1; tick <= opts.Ticks; tick++ {
		session.Tick()
		if tick%opts.ShootEvery == 0 {
			session.ShootAt(a.aim(session.State()))
		}
	}

	if err := session.Stop(); err != nil {
		return simResult{}, err
	}

	result.HUD = session.HUD()
	return result, nil
}

// printResult 输出模拟统计
func printResult(w io.Writer, opts simOptions, r simResult) {
	fmt.Fprintf(w, "seed=%d ticks=%d shoot-every=%d jitter=%.1f\n", opts.Seed, opts.Ticks, opts.ShootEvery, opts.Jitter)
	fmt.Fprintf(w, "shots=%d hits=%d misses=%d escapes=%d\n", r.HUD.Shots, r.HUD.Hits, r.HUD.Misses, r.Escapes)
	fmt.Fprintf(w, "accuracy=%d%% score=%d best=%d taunts=%d\n", r.HUD.Accuracy, r.HUD.Score, r.HUD.Best, r.Taunts)
}

func main() {
	flag.Parse()

	// 默认静音运行；如需详细调试，传入 --verbose
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultRangeConfig()
	if *configFlag != "" {
		loaded, err := config.LoadRangeConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	var store game.BestScoreStore = &game.MemoryScoreStore{}
	if *persistFlag {
		store = game.NewScoreStore(game.OpenStorage(cfg.Storage.AppName))
	}

	opts := simOptions{
		Ticks:      *ticksFlag,
		Seed:       *seedFlag,
		ShootEvery: *shootEveryFlag,
		Jitter:     *jitterFlag,
		Config:     cfg,
		Store:      store,
	}

	result, err := runSimulation(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(os.Stdout, opts, result)
}
