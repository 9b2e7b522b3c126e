package systems

import (
	"log"

	"github.com/decker502/aimrange/pkg/game"
)

// ReactionSystem 管理嘲讽角色的消息显示
//
// 规则：
//   - 消息显示期间（Active）的触发请求被忽略，不排队
//   - 触发时从嘲讽文本中均匀随机选择一条，计时器设为 Duration
//   - 每 tick 计时器减一，归零时消息消失
type ReactionSystem struct {
	state *game.RangeState
}

// NewReactionSystem 创建嘲讽系统
func NewReactionSystem(rs *game.RangeState) *ReactionSystem {
	return &ReactionSystem{state: rs}
}

// Trigger 尝试显示一条嘲讽
// 返回 false 表示当前已有消息在显示，本次触发被丢弃
func (s *ReactionSystem) Trigger() bool {
	r := &s.state.Reactor
	if r.Active {
		return false
	}

	taunts := s.state.Config.Reaction.Taunts
	if len(taunts) == 0 {
		return false
	}

	r.Active = true
	r.Timer = s.state.Config.Reaction.Duration
	r.Message = taunts[s.state.Rand.Intn(len(taunts))]
	r.Triggers++

	log.Printf("[ReactionSystem] Taunt #%d: %q", r.Triggers, r.Message)
	return true
}

// Update 推进显示计时器
func (s *ReactionSystem) Update() {
	r := &s.state.Reactor
	if !r.Active {
		return
	}

	r.Timer--
	if r.Timer <= 0 {
		r.Timer = 0
		r.Active = false
		r.Message = ""
	}
}
