package game

import "testing"

func TestTickClockOneTickPerFrame(t *testing.T) {
	clock := NewTickClock(60)

	total := 0
	for i := 0; i < 60; i++ {
		total += clock.Advance(1.0 / 60.0)
	}

	if total != 60 {
		t.Errorf("Expected 60 ticks for one second at 60 FPS, got %d", total)
	}
}

func TestTickClockDecouplesFrameRate(t *testing.T) {
	tests := []struct {
		name   string
		fps    int
		frames int
		want   int
	}{
		{"30 FPS doubles ticks", 30, 30, 60},
		{"120 FPS halves ticks", 120, 120, 60},
		{"144 FPS", 144, 144, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewTickClock(60)
			total := 0
			for i := 0; i < tt.frames; i++ {
				total += clock.Advance(1.0 / float64(tt.fps))
			}
			// 允许最后一个 tick 因浮点累积误差尚未到期
			if total < tt.want-1 || total > tt.want {
				t.Errorf("Expected ~%d ticks, got %d", tt.want, total)
			}
		})
	}
}

func TestTickClockCatchUpLimit(t *testing.T) {
	clock := NewTickClock(60)

	// 卡顿 2 秒，只补跑上限数量的 tick
	if got := clock.Advance(2.0); got != maxCatchUpTicks {
		t.Errorf("Expected %d catch-up ticks, got %d", maxCatchUpTicks, got)
	}

	// 积压被丢弃，下一帧恢复正常
	if got := clock.Advance(1.0 / 60.0); got != 1 {
		t.Errorf("Expected 1 tick after stall, got %d", got)
	}
}

func TestTickClockIgnoresNonPositiveDelta(t *testing.T) {
	clock := NewTickClock(0) // 使用默认 tick 率

	if got := clock.Advance(0); got != 0 {
		t.Errorf("Expected 0 ticks for zero delta, got %d", got)
	}
	if got := clock.Advance(-1); got != 0 {
		t.Errorf("Expected 0 ticks for negative delta, got %d", got)
	}
}

func TestTickClockReset(t *testing.T) {
	clock := NewTickClock(60)
	clock.Advance(1.0 / 120.0)
	clock.Reset()

	if got := clock.Advance(1.0 / 120.0); got != 0 {
		t.Errorf("Expected accumulator cleared by Reset, got %d ticks", got)
	}
}
