package systems

import (
	"image/color"
	"math/rand"

	"github.com/decker502/aimrange/pkg/components"
	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/game"
)

// fillCall 记录一次 FillRect 调用
type fillCall struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// textCall 记录一次 DrawText 调用
type textCall struct {
	Msg  string
	X, Y int
}

// recordingSurface 记录所有绘制调用的测试表面
type recordingSurface struct {
	fills []fillCall
	texts []textCall
}

func (s *recordingSurface) FillRect(x, y, width, height float64, clr color.RGBA) {
	s.fills = append(s.fills, fillCall{X: x, Y: y, W: width, H: height, Color: clr})
}

func (s *recordingSurface) DrawText(msg string, x, y int) {
	s.texts = append(s.texts, textCall{Msg: msg, X: x, Y: y})
}

// newTestState 创建使用默认配置和固定种子的靶场状态
func newTestState(seed int64) *game.RangeState {
	rs := game.NewRangeState(config.DefaultRangeConfig(), rand.New(rand.NewSource(seed)))
	rs.Phase = components.SessionRunning
	return rs
}

// addTarget 直接向状态中添加一个靶子
func addTarget(rs *game.RangeState, x, y, scale float64) {
	rs.Targets.Add(components.TargetComponent{
		X:     x,
		Y:     y,
		Scale: scale,
		Life:  rs.Config.Target.MaxLife,
	})
}
