package utils

import "github.com/decker502/aimrange/pkg/config"

// Viewport 描述模拟空间在窗口中的放置方式
//
// 渲染表面按容器宽度铺满，保持 16:9 宽高比；容器高度不足时改为按高度适配，
// 多余部分留黑边（letterbox）。模拟空间（320x180）均匀缩放到渲染表面。
type Viewport struct {
	// 渲染表面在窗口中的左上角偏移（窗口像素）
	OffsetX, OffsetY float64

	// 渲染表面尺寸（窗口像素）
	Width, Height float64

	// Scale 每个模拟单位对应的窗口像素数
	Scale float64
}

// NewViewport 根据外部容器尺寸计算视口
// 尺寸无效时返回 1:1 的逻辑分辨率视口
func NewViewport(outsideWidth, outsideHeight int) Viewport {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return Viewport{
			Width:  config.LogicalWidth,
			Height: config.LogicalHeight,
			Scale:  1,
		}
	}

	w := float64(outsideWidth)
	h := w * config.AspectHeight / config.AspectWidth
	if h > float64(outsideHeight) {
		h = float64(outsideHeight)
		w = h * config.AspectWidth / config.AspectHeight
	}

	return Viewport{
		OffsetX: (float64(outsideWidth) - w) / 2,
		OffsetY: (float64(outsideHeight) - h) / 2,
		Width:   w,
		Height:  h,
		Scale:   w / config.LogicalWidth,
	}
}

// ScreenToSim 将窗口坐标转换为模拟坐标
// 渲染表面外的坐标照常换算（结果落在模拟空间之外），由命中检测自然判定为未命中
func (v Viewport) ScreenToSim(screenX, screenY float64) (float64, float64) {
	if v.Scale <= 0 {
		return screenX, screenY
	}
	return (screenX - v.OffsetX) / v.Scale, (screenY - v.OffsetY) / v.Scale
}

// SimToScreen 将模拟坐标转换为窗口坐标
func (v Viewport) SimToScreen(simX, simY float64) (float64, float64) {
	return simX*v.Scale + v.OffsetX, simY*v.Scale + v.OffsetY
}
