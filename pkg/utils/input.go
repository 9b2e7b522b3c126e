// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的原始输入状态（窗口坐标）
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸（拖动瞄准）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	return state
}

// PointerFrame 一帧的指针输入（模拟坐标）
type PointerFrame struct {
	// 光标位置（模拟单位）
	X, Y float64
	// 光标相对上一帧是否移动
	Moved bool
	// 本帧是否触发射击（鼠标按下或触摸开始）
	Shoot bool
}

// PointerMapper 将原始指针输入转换为模拟坐标和射击触发
//
// 光标位置在两帧之间保持：触摸结束后光标停留在最后的触摸点。
type PointerMapper struct {
	lastX, lastY int
	hasLast      bool
}

// NewPointerMapper 创建指针映射器
func NewPointerMapper() *PointerMapper {
	return &PointerMapper{}
}

// Map 将原始输入按当前视口换算为模拟坐标
// 视口由窗口尺寸变化事件单独更新，这里只读取
func (m *PointerMapper) Map(v Viewport, raw InputState) PointerFrame {
	moved := !m.hasLast || raw.X != m.lastX || raw.Y != m.lastY
	m.lastX, m.lastY = raw.X, raw.Y
	m.hasLast = true

	x, y := v.ScreenToSim(float64(raw.X), float64(raw.Y))
	return PointerFrame{
		X:     x,
		Y:     y,
		Moved: moved,
		Shoot: raw.JustPressed,
	}
}

// Read 读取当前帧的 ebiten 输入并换算
func (m *PointerMapper) Read(v Viewport) PointerFrame {
	return m.Map(v, GetInputState())
}
