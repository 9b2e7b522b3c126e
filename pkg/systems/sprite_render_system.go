package systems

import (
	"image/color"

	"github.com/decker502/aimrange/pkg/utils"
)

// PixelMatrix 像素矩阵：每行是一组调色板下标，0 表示透明
type PixelMatrix [][]uint8

// Palette 调色板：下标 → 颜色
// 下标 0 以及未定义的下标都不绘制
type Palette map[uint8]color.RGBA

// 调色板下标
const (
	PaletteTransparent uint8 = iota
	PaletteTargetRed
	PaletteTargetWhite
	PaletteHit
	PaletteSpark
	PaletteSkin
	PaletteShirt
	PaletteDark
	PaletteBubble
	PaletteCrosshair
)

// DefaultPalette 靶场使用的固定调色板
var DefaultPalette = Palette{
	PaletteTargetRed:   {R: 0xd6, G: 0x3a, B: 0x3a, A: 0xff},
	PaletteTargetWhite: {R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff},
	PaletteHit:         {R: 0xff, G: 0xd8, B: 0x4a, A: 0xff},
	PaletteSpark:       {R: 0xff, G: 0x8c, B: 0x2a, A: 0xff},
	PaletteSkin:        {R: 0xe8, G: 0xb8, B: 0x8a, A: 0xff},
	PaletteShirt:       {R: 0x3a, G: 0x6e, B: 0xd6, A: 0xff},
	PaletteDark:        {R: 0x1c, G: 0x1c, B: 0x24, A: 0xff},
	PaletteBubble:      {R: 0x10, G: 0x10, B: 0x18, A: 0xff},
	PaletteCrosshair:   {R: 0x4a, G: 0xff, B: 0x7a, A: 0xff},
}

// TargetSprite 靶子（10x10 同心圆靶）
var TargetSprite = PixelMatrix{
	{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 2, 2, 2, 2, 2, 2, 1, 1},
	{1, 1, 2, 1, 1, 1, 1, 2, 1, 1},
	{1, 1, 2, 1, 3, 3, 1, 2, 1, 1},
	{1, 1, 2, 1, 3, 3, 1, 2, 1, 1},
	{1, 1, 2, 1, 1, 1, 1, 2, 1, 1},
	{1, 1, 2, 2, 2, 2, 2, 2, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
}

// ReactorSprite 嘲讽角色（8x12）
var ReactorSprite = PixelMatrix{
	{0, 0, 7, 7, 7, 7, 0, 0},
	{0, 7, 5, 5, 5, 5, 7, 0},
	{0, 7, 5, 7, 5, 7, 5, 0},
	{0, 7, 5, 5, 5, 5, 7, 0},
	{0, 0, 7, 5, 5, 7, 0, 0},
	{0, 0, 0, 6, 6, 0, 0, 0},
	{0, 6, 6, 6, 6, 6, 6, 0},
	{6, 6, 6, 6, 6, 6, 6, 6},
	{5, 0, 6, 6, 6, 6, 0, 5},
	{5, 0, 6, 6, 6, 6, 0, 5},
	{0, 0, 7, 0, 0, 7, 0, 0},
	{0, 0, 7, 0, 0, 7, 0, 0},
}

// Width 返回矩阵列数（取最长的一行）
func (m PixelMatrix) Width() int {
	w := 0
	for _, row := range m {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height 返回矩阵行数
func (m PixelMatrix) Height() int {
	return len(m)
}

// DrawSprite 以 (originX, originY) 为中心绘制像素矩阵
//
// 每个非透明单元格绘制为边长 scale 的实心正方形，
// 位置 = origin - (cols*scale/2, rows*scale/2) + (col, row)*scale。
// 返回实际绘制的单元格数量。
func DrawSprite(surface utils.Surface, m PixelMatrix, palette Palette, originX, originY, scale float64) int {
	if scale <= 0 {
		return 0
	}

	left := originX - float64(m.Width())*scale/2
	top := originY - float64(m.Height())*scale/2

	drawn := 0
	for row, cells := range m {
		for col, idx := range cells {
			if idx == PaletteTransparent {
				continue
			}
			clr, ok := palette[idx]
			if !ok {
				continue
			}
			surface.FillRect(left+float64(col)*scale, top+float64(row)*scale, scale, scale, clr)
			drawn++
		}
	}
	return drawn
}
