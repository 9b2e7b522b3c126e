package config

// 布局配置常量
// 本文件定义了靶场小游戏的逻辑分辨率和默认窗口尺寸

// Simulation Space (模拟空间)
// 所有实体坐标使用"模拟单位"，与实际显示像素无关
const (
	// LogicalWidth 模拟空间宽度（模拟单位）
	LogicalWidth = 320

	// LogicalHeight 模拟空间高度（模拟单位）
	LogicalHeight = 180

	// AspectWidth / AspectHeight 渲染表面的固定宽高比 16:9
	AspectWidth  = 16
	AspectHeight = 9
)

// Window (桌面端窗口)
const (
	// GameWindowWidth 默认窗口宽度（逻辑尺寸的 3 倍）
	GameWindowWidth = LogicalWidth * 3

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = LogicalHeight * 3
)

// HUD 与控制按钮布局（模拟单位）
const (
	// ControlButtonWidth 开始/再来一局按钮宽度
	ControlButtonWidth = 80.0

	// ControlButtonHeight 开始/再来一局按钮高度
	ControlButtonHeight = 20.0

	// ControlButtonY 按钮中心 Y 坐标
	ControlButtonY = 110.0
)

// ControlButtonBounds 返回居中控制按钮的矩形边界（模拟单位）
// 返回值：left, top, right, bottom
func ControlButtonBounds() (float64, float64, float64, float64) {
	left := (LogicalWidth - ControlButtonWidth) / 2
	top := ControlButtonY - ControlButtonHeight/2
	return left, top, left + ControlButtonWidth, top + ControlButtonHeight
}
