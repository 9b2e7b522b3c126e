package systems

import (
	"log"
	"math"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/ecs"
	"github.com/decker502/aimrange/pkg/game"
)

// ShotResult 一次射击的结算结果
type ShotResult struct {
	Hit     bool
	Taunted bool
	// 命中时为被击中靶子的中心
	X, Y float64
}

// HitSystem 射击结算
//
// 命中检测按生成逆序进行（最新生成的靶子优先），一次射击最多命中一个靶子。
// 碰撞盒是以靶子中心为中心、边长 Hitbox * Scale 的正方形，边界包含在内。
type HitSystem struct {
	state     *game.RangeState
	particles *ParticleSystem
	reaction  *ReactionSystem
}

// NewHitSystem 创建射击系统
func NewHitSystem(rs *game.RangeState, particles *ParticleSystem, reaction *ReactionSystem) *HitSystem {
	return &HitSystem{
		state:     rs,
		particles: particles,
		reaction:  reaction,
	}
}

// Shoot 在模拟坐标 (x, y) 处射击
//
// 命中：移除靶子，hits+1，score+1，在靶子中心生成粒子。
// 未命中：misses+1，累计 miss 数为 MissEvery 的倍数时尝试触发嘲讽。
// 非有限坐标（NaN/Inf）永远不会命中。
func (s *HitSystem) Shoot(x, y float64) ShotResult {
	stats := &s.state.Stats
	stats.Shots++

	hitIndex := ecs.Index(-1)
	var hit components.TargetComponent

	if isFinite(x) && isFinite(y) {
		hitbox := s.state.Config.Target.Hitbox
		s.state.Targets.EachReverse(func(i ecs.Index, t *components.TargetComponent) bool {
			if !Contains(t, hitbox, x, y) {
				return true
			}
			hitIndex = i
			hit = *t
			return false
		})
	}

	if hitIndex < 0 {
		stats.Misses++
		result := ShotResult{}
		every := s.state.Config.Reaction.MissEvery
		if every > 0 && stats.Misses%every == 0 {
			result.Taunted = s.reaction.Trigger()
		}
		log.Printf("[HitSystem] Miss at (%.1f, %.1f), misses=%d", x, y, stats.Misses)
		return result
	}

	s.state.Targets.Remove(hitIndex)
	s.state.Targets.Sweep()

	stats.Hits++
	stats.Score++
	s.particles.SpawnBurst(hit.X, hit.Y)

	log.Printf("[HitSystem] Hit target at (%.1f, %.1f), score=%d", hit.X, hit.Y, stats.Score)
	return ShotResult{Hit: true, X: hit.X, Y: hit.Y}
}

// Contains 判断点 (x, y) 是否落在靶子碰撞盒内（含边界）
func Contains(t *components.TargetComponent, hitbox, x, y float64) bool {
	half := hitbox * t.Scale / 2
	return math.Abs(x-t.X) <= half && math.Abs(y-t.Y) <= half
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
