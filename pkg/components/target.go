package components

// TargetComponent 靶子（纯数据，无方法）
//
// 生命周期:
//  1. SpawnSystem 在水平边界外侧创建
//  2. PhysicsSystem 每 tick 积分位置，上下边界反弹
//  3. 被命中时由 HitSystem 删除；飞出另一侧或 Life 耗尽时由 BoundsSystem 删除（计为逃脱）
type TargetComponent struct {
	// 位置（模拟单位，靶子中心）
	X, Y float64

	// 速度（模拟单位/tick）
	VX, VY float64

	// Scale 尺寸倍数，碰撞盒边长 = Hitbox * Scale
	Scale float64

	// Life 剩余存活 tick
	Life int

	// Age 已存活 tick，仅用于渲染闪烁
	Age int
}
