package game

// DefaultTickRate 每秒 tick 数
const DefaultTickRate = 60

// maxCatchUpTicks 单次 Advance 最多补跑的 tick 数
// 防止长时间卡顿（如浏览器标签页切到后台）后一次性补跑大量 tick
const maxCatchUpTicks = 5

// TickClock 固定步长累加器
//
// 将任意帧间隔转换为整数个固定 tick，使物理和计时器与实际帧率无关。
type TickClock struct {
	step        float64 // 每 tick 的秒数
	accumulator float64 // 尚未消耗的时间（秒）
}

// NewTickClock 创建固定步长累加器
//
// 参数：
//   - tickRate: 每秒 tick 数，<= 0 时使用 DefaultTickRate
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &TickClock{step: 1.0 / float64(tickRate)}
}

// Advance 累加 deltaTime 并返回本次应执行的 tick 数
// 超出补跑上限的积压时间会被丢弃
func (c *TickClock) Advance(deltaTime float64) int {
	if deltaTime <= 0 {
		return 0
	}

	c.accumulator += deltaTime

	// 容忍浮点误差：1/60 累加 60 次应恰好得到 60 个 tick
	const epsilon = 1e-9
	ticks := 0
	for c.accumulator+epsilon >= c.step && ticks < maxCatchUpTicks {
		c.accumulator -= c.step
		ticks++
	}

	if ticks == maxCatchUpTicks && c.accumulator >= c.step {
		c.accumulator = 0
	}
	if c.accumulator < 0 {
		c.accumulator = 0
	}

	return ticks
}

// Reset 清空累加器
func (c *TickClock) Reset() {
	c.accumulator = 0
}
