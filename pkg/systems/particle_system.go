package systems

import (
	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/ecs"
	"github.com/decker502/aimrange/pkg/game"
)

// 命中粒子使用的调色板下标
var burstColors = []uint8{PaletteHit, PaletteSpark, PaletteTargetRed}

// ParticleSystem 负责命中粒子的生成与寿命管理
// 粒子的移动由 PhysicsSystem 完成
type ParticleSystem struct {
	state *game.RangeState
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(rs *game.RangeState) *ParticleSystem {
	return &ParticleSystem{state: rs}
}

// SpawnBurst 在 (x, y) 处生成一组粒子
// 每个粒子速度分量在 [-Speed, Speed] 内独立均匀分布
func (s *ParticleSystem) SpawnBurst(x, y float64) int {
	cfg := s.state.Config.Particle
	rng := s.state.Rand

	for i := 0; i < cfg.Burst; i++ {
		s.state.Particles.Add(components.ParticleComponent{
			X:     x,
			Y:     y,
			VX:    (rng.Float64()*2 - 1) * cfg.Speed,
			VY:    (rng.Float64()*2 - 1) * cfg.Speed,
			Life:  cfg.Life,
			Color: burstColors[rng.Intn(len(burstColors))],
		})
	}
	return cfg.Burst
}

// Update 寿命减一，归零的粒子在本 tick 末被移除
// 粒子恰好存活 Life 个 tick
func (s *ParticleSystem) Update() int {
	expired := 0
	s.state.Particles.Each(func(i ecs.Index, p *components.ParticleComponent) bool {
		p.Life--
		if p.Life <= 0 {
			s.state.Particles.Remove(i)
			expired++
		}
		return true
	})
	s.state.Particles.Sweep()
	return expired
}
