package systems

import (
	"log"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/ecs"
	"github.com/decker502/aimrange/pkg/game"
)

// BoundsSystem 检测逃脱的靶子
//
// 逃脱条件（任一满足）：
//   - 向右飞行且越过右边界外 Margin
//   - 向左飞行且越过左边界外 Margin
//   - 存活时间耗尽
//
// 每个逃脱的靶子计一次 miss，并无条件尝试触发嘲讽（不受 MissEvery 约束）。
type BoundsSystem struct {
	state    *game.RangeState
	reaction *ReactionSystem
}

// NewBoundsSystem 创建边界系统
func NewBoundsSystem(rs *game.RangeState, reaction *ReactionSystem) *BoundsSystem {
	return &BoundsSystem{state: rs, reaction: reaction}
}

// EscapeResult 一个 tick 内的逃脱统计
type EscapeResult struct {
	Escaped int
	Taunted bool
}

// Update 执行一个 tick 的逃脱检测
func (s *BoundsSystem) Update() EscapeResult {
	var result EscapeResult
	margin := s.state.Config.Spawn.Margin

	s.state.Targets.Each(func(i ecs.Index, t *components.TargetComponent) bool {
		t.Age++
		t.Life--

		if !HasEscaped(t, margin) {
			return true
		}

		s.state.Targets.Remove(i)
		s.state.Stats.Misses++
		result.Escaped++
		if s.reaction.Trigger() {
			result.Taunted = true
		}
		log.Printf("[BoundsSystem] Target escaped at (%.1f, %.1f), misses=%d", t.X, t.Y, s.state.Stats.Misses)
		return true
	})
	s.state.Targets.Sweep()

	return result
}

// HasEscaped 判断靶子是否已逃脱
func HasEscaped(t *components.TargetComponent, margin float64) bool {
	if t.Life <= 0 {
		return true
	}
	if t.VX > 0 && t.X > config.LogicalWidth+margin {
		return true
	}
	if t.VX < 0 && t.X < -margin {
		return true
	}
	return false
}
