// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器和移动端共用。
// 桌面端和浏览器通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/embedded"
	"github.com/decker502/aimrange/pkg/game"
	"github.com/decker502/aimrange/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的靶场配置文件，为空则使用嵌入的 data/range.yaml
	ConfigPath string
	// Seed 随机数种子，0 表示使用当前时间
	Seed int64
	// AutoStart 跳过开始界面直接进入练习
	AutoStart bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	rangeConfig, err := LoadRangeConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("靶场配置加载失败: %w", err)
	}

	// 本地存储（浏览器 localStorage / 应用数据目录），失败时降级为内存模式
	storage := game.OpenStorage(rangeConfig.Storage.AppName)
	settingsManager := game.NewSettingsManager(storage)

	// 初始化音频上下文
	audioContext := audio.NewContext(game.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	rangeScene, err := scenes.NewRangeScene(scenes.RangeSceneOptions{
		Config:    rangeConfig,
		Rand:      rand.New(rand.NewSource(seed)),
		Store:     game.NewScoreStore(storage),
		Audio:     audioManager,
		AutoStart: cfg.AutoStart,
	})
	if err != nil {
		return nil, fmt.Errorf("靶场场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(rangeScene)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadRangeConfig 加载靶场配置
//
// 优先级：
//  1. path 非空时读取磁盘文件
//  2. 嵌入的 data/range.yaml
//  3. 未初始化嵌入资源时使用默认配置
func LoadRangeConfig(path string) (*config.RangeConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading range config from %s", path)
		return config.LoadRangeConfig(path)
	}

	data, err := embedded.ReadFile(config.RangeConfigPath)
	if errors.Is(err, embedded.ErrNotInitialized) {
		log.Printf("[Config] Embedded resources not initialized, using default range config")
		return config.DefaultRangeConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded range config: %w", err)
	}

	log.Printf("[Config] Loading embedded %s", config.RangeConfigPath)
	return config.ParseRangeConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭：结束当前一局并保存最高分
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两边填充黑色，缩放使用最近邻采样保持像素风格
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的屏幕尺寸
// 渲染表面跟随外部容器尺寸，尺寸变化作为带外事件转发给场景，只重新计算缩放比例
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存最高分
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
