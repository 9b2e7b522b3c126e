package modules

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/game"
	"github.com/decker502/aimrange/pkg/systems"
	"github.com/decker502/aimrange/pkg/utils"
)

// 会话状态转换错误
var (
	ErrSessionRunning    = errors.New("range session already running")
	ErrSessionNotRunning = errors.New("range session not running")
	ErrSessionNotEnded   = errors.New("range session not ended")
)

// RangeEvent 会话内发生的离散事件（音效等表现层使用）
type RangeEvent int

const (
	EventShot RangeEvent = iota
	EventHit
	EventMiss
	EventTaunt
	EventEscape
	EventSpawn
)

// String 返回事件名称
func (e RangeEvent) String() string {
	switch e {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventTaunt:
		return "taunt"
	case EventEscape:
		return "escape"
	case EventSpawn:
		return "spawn"
	default:
		return fmt.Sprintf("RangeEvent(%d)", int(e))
	}
}

// HUDSnapshot HUD 显示数据（只读快照）
type HUDSnapshot struct {
	Phase    components.SessionPhase
	Shots    int
	Hits     int
	Misses   int
	Accuracy int
	Score    int
	Best     int
	Taunt    string
}

// RangeSessionCallbacks 会话回调函数集合
type RangeSessionCallbacks struct {
	OnHUDChange func(HUDSnapshot) // HUD 数据变化后同步调用（可选）
	OnEvent     func(RangeEvent)  // 离散事件回调（可选）
}

// RangeSessionModule 靶场会话模块
//
// 会话模块独占一个 RangeState，并按固定顺序驱动各系统：
//  1. SpawnSystem    生成靶子
//  2. PhysicsSystem  积分 + 上下边界反弹
//  3. BoundsSystem   逃脱检测 + miss 计数 + 嘲讽触发
//  4. ReactionSystem 嘲讽计时
//  5. ParticleSystem 粒子寿命
//
// 渲染（RenderSystem）在所有更新之后只读执行。
//
// 状态机：Idle → Running → Ended →（Reset）→ Running。
// Running 没有自动结束条件，只能通过 Stop 结束。
//
// 每个实例拥有独立的状态、随机数源和存储，可以同时运行多个实例。
type RangeSessionModule struct {
	id    string
	state *game.RangeState
	store game.BestScoreStore
	clock *game.TickClock

	spawnSystem    *systems.SpawnSystem
	physicsSystem  *systems.PhysicsSystem
	boundsSystem   *systems.BoundsSystem
	reactionSystem *systems.ReactionSystem
	particleSystem *systems.ParticleSystem
	hitSystem      *systems.HitSystem
	renderSystem   *systems.RenderSystem

	onHUDChange func(HUDSnapshot)
	onEvent     func(RangeEvent)

	// 本局是否刷新过最高分
	improved bool
	lastHUD  HUDSnapshot
}

// NewRangeSessionModule 创建靶场会话模块
//
// 参数:
//   - cfg: 靶场配置（必须通过 Validate）
//   - rng: 随机数源，nil 时使用当前时间作为种子
//   - store: 最高分存储，nil 时使用内存存储
//   - callbacks: 回调函数集合
//
// 返回的模块处于 Idle 状态，最高分已从 store 读取。
func NewRangeSessionModule(
	cfg *config.RangeConfig,
	rng *rand.Rand,
	store game.BestScoreStore,
	callbacks RangeSessionCallbacks,
) (*RangeSessionModule, error) {
	if cfg == nil {
		return nil, fmt.Errorf("range config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid range config: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if store == nil {
		store = &game.MemoryScoreStore{}
	}

	rs := game.NewRangeState(cfg, rng)
	reaction := systems.NewReactionSystem(rs)
	particles := systems.NewParticleSystem(rs)

	m := &RangeSessionModule{
		id:             uuid.NewString()[:8],
		state:          rs,
		store:          store,
		clock:          game.NewTickClock(game.DefaultTickRate),
		spawnSystem:    systems.NewSpawnSystem(rs),
		physicsSystem:  systems.NewPhysicsSystem(rs),
		boundsSystem:   systems.NewBoundsSystem(rs, reaction),
		reactionSystem: reaction,
		particleSystem: particles,
		hitSystem:      systems.NewHitSystem(rs, particles, reaction),
		renderSystem:   systems.NewRenderSystem(rs),
		onHUDChange:    callbacks.OnHUDChange,
		onEvent:        callbacks.OnEvent,
	}

	rs.Stats.Best = store.LoadBest()
	m.lastHUD = m.HUD()

	log.Printf("[RangeSession %s] Created (best=%d)", m.id, rs.Stats.Best)
	return m, nil
}

// ID 返回实例标识（用于日志区分多个实例）
func (m *RangeSessionModule) ID() string {
	return m.id
}

// State 返回会话状态（只读使用）
func (m *RangeSessionModule) State() *game.RangeState {
	return m.state
}

// Phase 返回当前会话阶段
func (m *RangeSessionModule) Phase() components.SessionPhase {
	return m.state.Phase
}

// HUD 返回当前 HUD 快照
func (m *RangeSessionModule) HUD() HUDSnapshot {
	rs := m.state
	return HUDSnapshot{
		Phase:    rs.Phase,
		Shots:    rs.Stats.Shots,
		Hits:     rs.Stats.Hits,
		Misses:   rs.Stats.Misses,
		Accuracy: rs.Accuracy(),
		Score:    rs.Stats.Score,
		Best:     rs.Stats.Best,
		Taunt:    rs.Reactor.Message,
	}
}

// Start 开始新的一局
// 清空计数器和实体列表，重新布置嘲讽角色；可从 Idle 或 Ended 调用
func (m *RangeSessionModule) Start() error {
	if m.state.Phase == components.SessionRunning {
		return ErrSessionRunning
	}

	m.state.ResetSession()
	m.state.Phase = components.SessionRunning
	m.clock.Reset()
	m.improved = false

	log.Printf("[RangeSession %s] Started (best=%d)", m.id, m.state.Stats.Best)
	m.notifyHUD(true)
	return nil
}

// Stop 结束当前一局（外部触发），冻结分数并保存最高分
func (m *RangeSessionModule) Stop() error {
	if m.state.Phase != components.SessionRunning {
		return ErrSessionNotRunning
	}

	m.state.Phase = components.SessionEnded
	if m.improved {
		m.store.SaveBest(m.state.Stats.Best)
	}

	log.Printf("[RangeSession %s] Ended: score=%d hits=%d misses=%d accuracy=%d%%",
		m.id, m.state.Stats.Score, m.state.Stats.Hits, m.state.Stats.Misses, m.state.Accuracy())
	m.notifyHUD(true)
	return nil
}

// Reset 从 Ended 重新开始（与 Start 相同的转换）
func (m *RangeSessionModule) Reset() error {
	if m.state.Phase != components.SessionEnded {
		return ErrSessionNotEnded
	}
	return m.Start()
}

// Update 按实际帧间隔推进模拟
// 通过固定步长累加器转换为整数个 tick，返回本次执行的 tick 数
func (m *RangeSessionModule) Update(deltaTime float64) int {
	if m.state.Phase != components.SessionRunning {
		return 0
	}

	ticks := m.clock.Advance(deltaTime)
	for i := 0; i < ticks; i++ {
		m.Tick()
	}
	return ticks
}

// Tick 执行一个模拟步
func (m *RangeSessionModule) Tick() {
	if m.state.Phase != components.SessionRunning {
		return
	}

	// 1. 生成
	if m.spawnSystem.Update() {
		m.emit(EventSpawn)
	}

	// 2. 积分 + 反弹
	m.physicsSystem.Update()

	// 3. 逃脱检测
	escape := m.boundsSystem.Update()
	for i := 0; i < escape.Escaped; i++ {
		m.emit(EventEscape)
	}
	if escape.Taunted {
		m.emit(EventTaunt)
	}

	// 4. 嘲讽计时
	m.reactionSystem.Update()

	// 5. 粒子寿命
	m.particleSystem.Update()

	m.state.Ticks++
	m.notifyHUD(false)
}

// SetCursor 更新指针位置（模拟单位）
func (m *RangeSessionModule) SetCursor(x, y float64) {
	m.state.CursorX = x
	m.state.CursorY = y
}

// Shoot 在当前指针位置射击
// 非运行状态下忽略
func (m *RangeSessionModule) Shoot() systems.ShotResult {
	if m.state.Phase != components.SessionRunning {
		return systems.ShotResult{}
	}

	result := m.hitSystem.Shoot(m.state.CursorX, m.state.CursorY)
	m.emit(EventShot)

	if result.Hit {
		m.emit(EventHit)
		m.updateBest()
	} else {
		m.emit(EventMiss)
	}
	if result.Taunted {
		m.emit(EventTaunt)
	}

	m.notifyHUD(true)
	return result
}

// ShootAt 移动指针到 (x, y) 并射击
func (m *RangeSessionModule) ShootAt(x, y float64) systems.ShotResult {
	m.SetCursor(x, y)
	return m.Shoot()
}

// Draw 把当前状态绘制到像素表面
func (m *RangeSessionModule) Draw(surface utils.Surface) {
	m.renderSystem.Draw(surface)
}

// updateBest 分数超过历史最高分时立即保存
func (m *RangeSessionModule) updateBest() {
	stats := &m.state.Stats
	if stats.Score <= stats.Best {
		return
	}

	stats.Best = stats.Score
	m.improved = true
	m.store.SaveBest(stats.Best)
	log.Printf("[RangeSession %s] New best score: %d", m.id, stats.Best)
}

func (m *RangeSessionModule) emit(e RangeEvent) {
	if m.onEvent != nil {
		m.onEvent(e)
	}
}

// notifyHUD 通知 HUD 监听器
// force 为 false 时仅在快照变化时通知
func (m *RangeSessionModule) notifyHUD(force bool) {
	hud := m.HUD()
	if !force && hud == m.lastHUD {
		return
	}
	m.lastHUD = hud
	if m.onHUDChange != nil {
		m.onHUDChange(hud)
	}
}
