package components

// SessionPhase 会话状态枚举
type SessionPhase int

const (
	// SessionIdle 初始状态，显示开始界面，循环未运行
	SessionIdle SessionPhase = iota

	// SessionRunning 循环运行中，接受输入
	SessionRunning

	// SessionEnded 本局结束，显示结算界面，分数冻结
	SessionEnded
)

// String 返回 SessionPhase 的字符串表示
func (p SessionPhase) String() string {
	switch p {
	case SessionIdle:
		return "Idle"
	case SessionRunning:
		return "Running"
	case SessionEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// SessionStats 会话计数器（纯数据）
// Best 跨会话保留，其余字段在每局开始时清零
type SessionStats struct {
	Shots  int // 开枪次数
	Hits   int // 命中次数
	Misses int // 空枪次数 + 逃脱靶子数
	Score  int // 本局得分
	Best   int // 历史最高分
}
