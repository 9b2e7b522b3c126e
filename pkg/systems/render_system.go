package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/ecs"
	"github.com/decker502/aimrange/pkg/game"
	"github.com/decker502/aimrange/pkg/utils"
)

// 场景颜色
var (
	BackgroundColor = color.RGBA{R: 0x22, G: 0x2a, B: 0x3a, A: 0xff}
	GroundColor     = color.RGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xff}
	BubbleBorder    = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
)

const (
	// 粒子绘制为 2x2 方块
	particleSize = 2.0
	// 准星臂长
	crosshairArm = 3.0
	// 气泡内边距
	bubblePadding = 3
)

// RenderSystem 把靶场状态绘制到像素表面
//
// 绘制顺序（后绘制的在上层）：
//  1. 背景
//  2. 靶子（按生成顺序，最新的在最上层，与命中检测顺序一致）
//  3. 粒子
//  4. 嘲讽角色及消息气泡
//  5. HUD
//  6. 准星（仅运行中）
//
// 渲染只读取状态，不做任何修改。
type RenderSystem struct {
	state   *game.RangeState
	palette Palette
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(rs *game.RangeState) *RenderSystem {
	return &RenderSystem{
		state:   rs,
		palette: DefaultPalette,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(surface utils.Surface) {
	s.drawBackground(surface)
	s.drawTargets(surface)
	s.drawParticles(surface)
	s.drawReactor(surface)
	s.drawHUD(surface)

	if s.state.Phase == components.SessionRunning {
		s.drawCrosshair(surface)
	}
}

func (s *RenderSystem) drawBackground(surface utils.Surface) {
	surface.FillRect(0, 0, config.LogicalWidth, config.LogicalHeight, BackgroundColor)
	groundY := s.state.Config.Target.BounceMaxY + 10
	surface.FillRect(0, groundY, config.LogicalWidth, config.LogicalHeight-groundY, GroundColor)
}

func (s *RenderSystem) drawTargets(surface utils.Surface) {
	cell := s.state.Config.Target.Hitbox / float64(TargetSprite.Width())
	s.state.Targets.Each(func(_ ecs.Index, t *components.TargetComponent) bool {
		DrawSprite(surface, TargetSprite, s.palette, t.X, t.Y, cell*t.Scale)
		return true
	})
}

func (s *RenderSystem) drawParticles(surface utils.Surface) {
	s.state.Particles.Each(func(_ ecs.Index, p *components.ParticleComponent) bool {
		clr, ok := s.palette[p.Color]
		if !ok {
			return true
		}
		surface.FillRect(p.X-particleSize/2, p.Y-particleSize/2, particleSize, particleSize, clr)
		return true
	})
}

func (s *RenderSystem) drawReactor(surface utils.Surface) {
	r := s.state.Reactor
	DrawSprite(surface, ReactorSprite, s.palette, r.X, r.Y, r.Scale)

	if !r.Active || r.Message == "" {
		return
	}

	// 气泡位于角色左上方，右边缘对齐角色左边缘
	w := utils.TextWidth(r.Message) + bubblePadding*2
	h := utils.GlyphHeight + bubblePadding
	right := int(r.X - float64(ReactorSprite.Width())*r.Scale/2)
	x := right - w
	if x < 0 {
		x = 0
	}
	y := int(r.Y-float64(ReactorSprite.Height())*r.Scale/2) - h - 2

	surface.FillRect(float64(x-1), float64(y-1), float64(w+2), float64(h+2), BubbleBorder)
	surface.FillRect(float64(x), float64(y), float64(w), float64(h), s.palette[PaletteBubble])
	surface.DrawText(r.Message, x+bubblePadding, y)
}

func (s *RenderSystem) drawHUD(surface utils.Surface) {
	surface.DrawText(HUDLine(s.state), 4, 2)
}

func (s *RenderSystem) drawCrosshair(surface utils.Surface) {
	clr := s.palette[PaletteCrosshair]
	x, y := s.state.CursorX, s.state.CursorY
	surface.FillRect(x-crosshairArm, y, crosshairArm*2+1, 1, clr)
	surface.FillRect(x, y-crosshairArm, 1, crosshairArm*2+1, clr)
}

// HUDLine 返回 HUD 文本
func HUDLine(rs *game.RangeState) string {
	return fmt.Sprintf("HITS %d  MISSES %d  ACC %d%%  BEST %d",
		rs.Stats.Hits, rs.Stats.Misses, rs.Accuracy(), rs.Stats.Best)
}
