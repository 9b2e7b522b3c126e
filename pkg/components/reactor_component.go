package components

// ReactorComponent 嘲讽角色组件（纯数据，无方法）
//
// 设计目的:
//
//	靶场右下角常驻的像素小人。玩家累计空枪或漏掉靶子时弹出一句嘲讽。
//	同一时间最多显示一条消息，显示期间的新触发直接丢弃（不排队）。
//
// 生命周期:
//  1. 会话开始时创建（每局重置）
//  2. ReactionSystem 负责触发与计时
//  3. 整个会话期间常驻，不会中途销毁
type ReactorComponent struct {
	// 固定屏幕位置（模拟单位，角色中心）
	X, Y float64

	// Scale 像素格边长
	Scale float64

	// Active 是否正在显示消息
	Active bool

	// Timer 消息剩余显示 tick
	Timer int

	// Message 当前显示的消息
	Message string

	// Triggers 本局成功触发的次数
	Triggers int
}
