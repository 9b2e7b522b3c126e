package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/game"
	"github.com/decker502/aimrange/pkg/modules"
	"github.com/decker502/aimrange/pkg/utils"
)

// 覆盖层颜色
var (
	overlayColor      = color.RGBA{R: 0, G: 0, B: 0, A: 0xa0}
	buttonColor       = color.RGBA{R: 0xd6, G: 0x3a, B: 0x3a, A: 0xff}
	buttonBorderColor = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	letterboxColor    = color.Black
)

// 覆盖层文本
const (
	titleText    = "AIM RANGE"
	endedText    = "SESSION COMPLETE"
	practiceText = "PRACTICE"
	againText    = "AGAIN"
)

// RangeSceneOptions 靶场场景构造参数
type RangeSceneOptions struct {
	Config    *config.RangeConfig
	Rand      *rand.Rand          // 可为 nil
	Store     game.BestScoreStore // 可为 nil（内存存储）
	Audio     *game.AudioManager  // 可为 nil（静音）
	AutoStart bool                // 跳过开始界面直接进入 Running
}

// RangeScene 靶场场景
//
// 职责：
//   - 读取指针输入（鼠标/触摸），换算为模拟坐标后交给会话模块
//   - Idle/Ended 状态下显示 PRACTICE/AGAIN 按钮，点击后开始新一局
//   - Esc 结束当前一局
//   - 在 320x180 的离屏图像上绘制，再按视口最近邻放大到屏幕
type RangeScene struct {
	session *modules.RangeSessionModule
	audio   *game.AudioManager
	pointer *utils.PointerMapper

	// 视口只在 Resize 时重新计算
	viewport utils.Viewport

	// 离屏画布（模拟分辨率），首次 Draw 时创建
	canvas  *ebiten.Image
	surface *utils.ImageSurface

	// 最近一次的 HUD 快照
	hud modules.HUDSnapshot
}

// NewRangeScene 创建靶场场景
func NewRangeScene(opts RangeSceneOptions) (*RangeScene, error) {
	scene := &RangeScene{
		audio:    opts.Audio,
		pointer:  utils.NewPointerMapper(),
		viewport: utils.NewViewport(config.GameWindowWidth, config.GameWindowHeight),
	}

	session, err := modules.NewRangeSessionModule(opts.Config, opts.Rand, opts.Store, modules.RangeSessionCallbacks{
		OnHUDChange: scene.onHUDChange,
		OnEvent:     scene.onEvent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create range session: %w", err)
	}
	scene.session = session
	scene.hud = session.HUD()

	if opts.AutoStart {
		if err := session.Start(); err != nil {
			return nil, fmt.Errorf("failed to auto-start range session: %w", err)
		}
	}

	log.Printf("[RangeScene] Created (session=%s, autostart=%v)", session.ID(), opts.AutoStart)
	return scene, nil
}

// Session 返回会话模块
func (s *RangeScene) Session() *modules.RangeSessionModule {
	return s.session
}

// HUD 返回最近一次的 HUD 快照
func (s *RangeScene) HUD() modules.HUDSnapshot {
	return s.hud
}

// Update 实现 game.Scene
func (s *RangeScene) Update(deltaTime float64) {
	frame := s.pointer.Read(s.viewport)
	stop := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	s.handleInput(frame, stop)

	s.session.Update(deltaTime)
}

// handleInput 处理一帧的输入
func (s *RangeScene) handleInput(frame utils.PointerFrame, stop bool) {
	if frame.Moved || frame.Shoot {
		s.session.SetCursor(frame.X, frame.Y)
	}

	switch s.session.Phase() {
	case components.SessionRunning:
		if stop {
			if err := s.session.Stop(); err != nil {
				log.Printf("[RangeScene] Stop failed: %v", err)
			}
			return
		}
		if frame.Shoot {
			s.session.Shoot()
		}

	case components.SessionIdle:
		if frame.Shoot && isControlButtonHit(frame.X, frame.Y) {
			if err := s.session.Start(); err != nil {
				log.Printf("[RangeScene] Start failed: %v", err)
			}
		}

	case components.SessionEnded:
		if frame.Shoot && isControlButtonHit(frame.X, frame.Y) {
			if err := s.session.Reset(); err != nil {
				log.Printf("[RangeScene] Reset failed: %v", err)
			}
		}
	}
}

// Draw 实现 game.Scene
func (s *RangeScene) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(config.LogicalWidth, config.LogicalHeight)
		s.surface = utils.NewImageSurface(s.canvas)
	}

	s.canvas.Clear()
	s.DrawTo(s.surface)

	screen.Fill(letterboxColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.viewport.Scale, s.viewport.Scale)
	op.GeoM.Translate(s.viewport.OffsetX, s.viewport.OffsetY)
	// 最近邻采样，保证像素边缘锐利
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(s.canvas, op)
}

// DrawTo 在模拟分辨率的表面上绘制一帧（会话画面 + 覆盖层）
func (s *RangeScene) DrawTo(surface utils.Surface) {
	s.session.Draw(surface)

	switch s.session.Phase() {
	case components.SessionIdle:
		s.drawOverlay(surface, titleText, fmt.Sprintf("BEST %d", s.hud.Best), practiceText)
		drawCenteredText(surface, utils.ShootHint(), 140)
	case components.SessionEnded:
		summary := fmt.Sprintf("SCORE %d  ACC %d%%  BEST %d", s.hud.Score, s.hud.Accuracy, s.hud.Best)
		s.drawOverlay(surface, endedText, summary, againText)
	}
}

func (s *RangeScene) drawOverlay(surface utils.Surface, title, subtitle, button string) {
	surface.FillRect(0, 0, config.LogicalWidth, config.LogicalHeight, overlayColor)

	drawCenteredText(surface, title, 50)
	drawCenteredText(surface, subtitle, 72)

	left, top, right, bottom := config.ControlButtonBounds()
	surface.FillRect(left-1, top-1, right-left+2, bottom-top+2, buttonBorderColor)
	surface.FillRect(left, top, right-left, bottom-top, buttonColor)
	drawCenteredText(surface, button, int(top)+2)
}

// Resize 实现 game.Resizable
// 只重新计算视口，不触碰模拟状态
func (s *RangeScene) Resize(outsideWidth, outsideHeight int) {
	s.viewport = utils.NewViewport(outsideWidth, outsideHeight)
	log.Printf("[RangeScene] Resize %dx%d -> scale %.2f", outsideWidth, outsideHeight, s.viewport.Scale)
}

// Viewport 返回当前视口
func (s *RangeScene) Viewport() utils.Viewport {
	return s.viewport
}

// SaveOnExit 实现 game.Saveable
// 运行中退出时结束当前一局，以保存最高分
func (s *RangeScene) SaveOnExit() bool {
	if s.session.Phase() != components.SessionRunning {
		return true
	}
	if err := s.session.Stop(); err != nil {
		log.Printf("[RangeScene] SaveOnExit: %v", err)
		return false
	}
	return true
}

func (s *RangeScene) onHUDChange(hud modules.HUDSnapshot) {
	s.hud = hud
}

// onEvent 将会话事件映射为音效
func (s *RangeScene) onEvent(e modules.RangeEvent) {
	switch e {
	case modules.EventShot:
		s.audio.PlaySound(game.SoundShot)
	case modules.EventHit:
		s.audio.PlaySound(game.SoundHit)
	case modules.EventTaunt:
		s.audio.PlaySound(game.SoundTaunt)
	}
}

// isControlButtonHit 检查模拟坐标是否落在控制按钮内
func isControlButtonHit(x, y float64) bool {
	left, top, right, bottom := config.ControlButtonBounds()
	return isPointInRect(x, y, left, top, right-left, bottom-top)
}

// drawCenteredText 水平居中绘制一行文本
func drawCenteredText(surface utils.Surface, msg string, y int) {
	x := (config.LogicalWidth - utils.TextWidth(msg)) / 2
	surface.DrawText(msg, x, y)
}
