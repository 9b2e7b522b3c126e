package components

// ParticleComponent 命中粒子（纯数据，无方法）
// 纯装饰效果，不与其他实体交互
type ParticleComponent struct {
	// 位置（模拟单位）
	X, Y float64

	// 速度（模拟单位/tick），生成时随机确定
	VX, VY float64

	// Life 剩余寿命（tick），归零时删除
	Life int

	// Color 调色板下标
	Color uint8
}
