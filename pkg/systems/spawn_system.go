package systems

import (
	"log"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/game"
)

// SpawnSide 靶子出生的一侧
type SpawnSide int

const (
	// SpawnLeft 从左侧进入，向右飞行
	SpawnLeft SpawnSide = iota
	// SpawnRight 从右侧进入，向左飞行
	SpawnRight
)

// SpawnSystem 按固定 tick 间隔生成靶子
//
// 生成策略：
//   - 随机选择左/右侧，出生点位于该侧水平边界外 Margin 处
//   - 水平速度大小在 SpeedX 范围内均匀分布，方向指向另一侧
//   - 垂直速度在 SpeedY 范围内均匀分布
//   - 缩放在 Scale 范围内均匀分布（缩放越大碰撞盒越大，越容易命中）
type SpawnSystem struct {
	state *game.RangeState
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(rs *game.RangeState) *SpawnSystem {
	return &SpawnSystem{state: rs}
}

// Update 计时器加一，达到间隔时生成一个靶子并清零
// 返回本 tick 是否生成了靶子
func (s *SpawnSystem) Update() bool {
	s.state.SpawnTimer++
	if s.state.SpawnTimer < s.state.Config.Spawn.Interval {
		return false
	}

	s.state.SpawnTimer = 0
	s.Spawn()
	return true
}

// Spawn 立即生成一个靶子
func (s *SpawnSystem) Spawn() components.TargetComponent {
	cfg := s.state.Config
	rng := s.state.Rand

	side := SpawnSide(rng.Intn(2))
	speed := uniform(rng.Float64(), cfg.Spawn.SpeedX)

	target := components.TargetComponent{
		Y:     uniform(rng.Float64(), cfg.Spawn.Y),
		VY:    uniform(rng.Float64(), cfg.Spawn.SpeedY),
		Scale: uniform(rng.Float64(), cfg.Spawn.Scale),
		Life:  cfg.Target.MaxLife,
	}

	switch side {
	case SpawnLeft:
		target.X = -cfg.Spawn.Margin
		target.VX = speed
	default:
		target.X = config.LogicalWidth + cfg.Spawn.Margin
		target.VX = -speed
	}

	s.state.Targets.Add(target)
	log.Printf("[SpawnSystem] Target spawned: side=%d pos=(%.1f, %.1f) vel=(%.2f, %.2f) scale=%.2f",
		side, target.X, target.Y, target.VX, target.VY, target.Scale)

	return target
}

// uniform 将 [0, 1) 的随机数映射到 [r.Min, r.Max]
func uniform(u float64, r config.FloatRange) float64 {
	return r.Min + u*(r.Max-r.Min)
}
