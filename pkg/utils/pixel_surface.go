package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface 像素绘制表面
// 渲染系统只依赖这个接口，测试中可替换为记录调用的实现
type Surface interface {
	// FillRect 填充轴对齐矩形（模拟单位）
	FillRect(x, y, width, height float64, clr color.RGBA)

	// DrawText 在 (x, y) 处绘制一行调试字体文本（左上角对齐）
	DrawText(msg string, x, y int)
}

// 调试字体的字形尺寸（像素）
const (
	GlyphWidth  = 6
	GlyphHeight = 16
)

// TextWidth 返回一行文本的像素宽度
func TextWidth(msg string) int {
	return len(msg) * GlyphWidth
}

// ImageSurface 基于 ebiten.Image 的绘制表面
// 关闭抗锯齿，保证像素边缘锐利
type ImageSurface struct {
	Image *ebiten.Image
}

// NewImageSurface 包装 ebiten.Image
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{Image: img}
}

// FillRect 实现 Surface
func (s *ImageSurface) FillRect(x, y, width, height float64, clr color.RGBA) {
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// DrawText 实现 Surface
func (s *ImageSurface) DrawText(msg string, x, y int) {
	ebitenutil.DebugPrintAt(s.Image, msg, x, y)
}

// Fill 用纯色填充整个表面
func (s *ImageSurface) Fill(clr color.Color) {
	s.Image.Fill(clr)
}
