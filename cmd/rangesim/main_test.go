package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/decker502/aimrange/pkg/config"
	"github.com/decker502/aimrange/pkg/game"
)

func testOptions(seed int64) simOptions {
	return simOptions{
		Ticks:      1800,
		Seed:       seed,
		ShootEvery: 15,
		Jitter:     4,
		Config:     config.DefaultRangeConfig(),
		Store:      &game.MemoryScoreStore{},
	}
}

// TestRunSimulation_Reproducible 相同种子得到完全相同的统计
func TestRunSimulation_Reproducible(t *testing.T) {
	a, err := runSimulation(testOptions(7))
	if err != nil {
		t.Fatalf("runSimulation() error: %v", err)
	}
	b, err := runSimulation(testOptions(7))
	if err != nil {
		t.Fatalf("runSimulation() error: %v", err)
	}

	if a != b {
		t.Errorf("same seed produced different results:\n%+v\n%+v", a, b)
	}
}

// TestRunSimulation_Counters 统计之间的关系成立
func TestRunSimulation_Counters(t *testing.T) {
	opts := testOptions(3)
	r, err := runSimulation(opts)
	if err != nil {
		t.Fatalf("runSimulation() error: %v", err)
	}

	if r.HUD.Shots != opts.Ticks/opts.ShootEvery {
		t.Errorf("Shots = %d, want %d", r.HUD.Shots, opts.Ticks/opts.ShootEvery)
	}
	if r.HUD.Score != r.HUD.Hits {
		t.Errorf("Score %d != Hits %d", r.HUD.Score, r.HUD.Hits)
	}
	// misses = 空枪 + 逃脱
	if r.HUD.Misses != r.HUD.Shots-r.HUD.Hits+r.Escapes {
		t.Errorf("Misses = %d, want %d", r.HUD.Misses, r.HUD.Shots-r.HUD.Hits+r.Escapes)
	}
	if r.HUD.Hits == 0 {
		t.Error("tracking aimer should hit at least one target")
	}
	if r.HUD.Best != r.HUD.Score {
		t.Errorf("Best = %d, want %d with an empty store", r.HUD.Best, r.HUD.Score)
	}
}

// TestRunSimulation_InvalidOptions 无效参数返回错误
func TestRunSimulation_InvalidOptions(t *testing.T) {
	opts := testOptions(1)
	opts.ShootEvery = 0
	if _, err := runSimulation(opts); err == nil {
		t.Error("expected error for shoot-every 0")
	}

	opts = testOptions(1)
	opts.Config = nil
	if _, err := runSimulation(opts); err == nil {
		t.Error("expected error for nil config")
	}
}

// TestPrintResult 测试输出格式
func TestPrintResult(t *testing.T) {
	opts := testOptions(5)
	r, err := runSimulation(opts)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printResult(&buf, opts, r)

	out := buf.String()
	for _, want := range []string{"seed=5", "ticks=1800", "accuracy=", "taunts="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
