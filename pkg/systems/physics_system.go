package systems

import (
	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/ecs"
	"github.com/decker502/aimrange/pkg/game"
)

// PhysicsSystem 推进所有靶子和粒子一个 tick
//
// 靶子：位置 += 速度；积分后 Y 超出 [BounceMinY, BounceMaxY] 时垂直速度取反（只反弹上下边界）。
// 粒子：位置 += 速度，不做边界检查。
// 生成之后不再引入随机数，相同初速度和 tick 数得到完全相同的轨迹。
type PhysicsSystem struct {
	state *game.RangeState
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(rs *game.RangeState) *PhysicsSystem {
	return &PhysicsSystem{state: rs}
}

// Update 执行一个 tick 的积分
func (s *PhysicsSystem) Update() {
	minY := s.state.Config.Target.BounceMinY
	maxY := s.state.Config.Target.BounceMaxY

	s.state.Targets.Each(func(_ ecs.Index, t *components.TargetComponent) bool {
		IntegrateTarget(t, minY, maxY)
		return true
	})

	s.state.Particles.Each(func(_ ecs.Index, p *components.ParticleComponent) bool {
		p.X += p.VX
		p.Y += p.VY
		return true
	})
}

// IntegrateTarget 推进单个靶子一个 tick
// 返回本 tick 是否发生了反弹
func IntegrateTarget(t *components.TargetComponent, minY, maxY float64) bool {
	t.X += t.VX
	t.Y += t.VY

	if t.Y < minY || t.Y > maxY {
		t.VY = -t.VY
		return true
	}
	return false
}
