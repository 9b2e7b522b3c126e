package game

import (
	"math/rand"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/ecs"
)

// 实体池预分配容量
const (
	targetPoolCapacity   = 32
	particlePoolCapacity = 128
)

// RangeState 存储一局靶场游戏的全部可变状态
//
// 每个会话实例独占一个 RangeState（不是全局单例），
// 只有会话模块在每 tick 内按固定顺序调用各系统修改它。
// 渲染系统只读取。
type RangeState struct {
	Config *config.RangeConfig
	Rand   *rand.Rand

	Phase components.SessionPhase

	Targets   *ecs.Pool[components.TargetComponent]
	Particles *ecs.Pool[components.ParticleComponent]
	Reactor   components.ReactorComponent
	Stats     components.SessionStats

	// SpawnTimer 距离上次生成靶子经过的 tick
	SpawnTimer int

	// Ticks 本局累计 tick 数
	Ticks uint64

	// 指针位置（模拟单位）
	CursorX, CursorY float64
}

// NewRangeState 创建新的靶场状态
//
// 参数：
//   - cfg: 靶场配置
//   - rng: 随机数源（测试中传入固定种子以获得可复现结果）
func NewRangeState(cfg *config.RangeConfig, rng *rand.Rand) *RangeState {
	rs := &RangeState{
		Config:    cfg,
		Rand:      rng,
		Phase:     components.SessionIdle,
		Targets:   ecs.NewPool[components.TargetComponent](targetPoolCapacity),
		Particles: ecs.NewPool[components.ParticleComponent](particlePoolCapacity),
	}
	rs.resetReactor()
	return rs
}

// ResetSession 清空本局计数器和实体列表，重新布置嘲讽角色
// 历史最高分保留
func (rs *RangeState) ResetSession() {
	best := rs.Stats.Best
	rs.Stats = components.SessionStats{Best: best}

	rs.Targets.Clear()
	rs.Particles.Clear()
	rs.resetReactor()

	rs.SpawnTimer = 0
	rs.Ticks = 0
}

func (rs *RangeState) resetReactor() {
	rs.Reactor = components.ReactorComponent{
		X:     rs.Config.Reaction.X,
		Y:     rs.Config.Reaction.Y,
		Scale: rs.Config.Reaction.Scale,
	}
}

// Accuracy 返回命中率百分比（向下取整）
// 未开枪时定义为 100
func (rs *RangeState) Accuracy() int {
	return Accuracy(rs.Stats.Hits, rs.Stats.Shots)
}

// Accuracy 计算命中率百分比（向下取整），shots 为 0 时返回 100
func Accuracy(hits, shots int) int {
	if shots <= 0 {
		return 100
	}
	return hits * 100 / shots
}
