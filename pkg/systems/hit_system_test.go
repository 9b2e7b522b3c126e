package systems

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func newTestHitSystem(seed int64) (*HitSystem, *ReactionSystem) {
	rs := newTestState(seed)
	reaction := NewReactionSystem(rs)
	return NewHitSystem(rs, NewParticleSystem(rs), reaction), reaction
}

// TestHitSystem_Hit 命中移除靶子、生成 8 个粒子、hits 和 score 各加一
func TestHitSystem_Hit(t *testing.T) {
	hs, _ := newTestHitSystem(1)
	rs := hs.state
	addTarget(rs, 100, 80, 1)

	result := hs.Shoot(105, 85)

	if !result.Hit || result.X != 100 || result.Y != 80 {
		t.Fatalf("result = %+v, want hit at (100, 80)", result)
	}
	if rs.Targets.Live() != 0 {
		t.Error("hit target should be removed")
	}
	if rs.Particles.Live() != 8 {
		t.Errorf("expected 8 particles, got %d", rs.Particles.Live())
	}
	if rs.Stats.Shots != 1 || rs.Stats.Hits != 1 || rs.Stats.Score != 1 || rs.Stats.Misses != 0 {
		t.Errorf("stats = %+v", rs.Stats)
	}
}

// TestHitSystem_NewestFirst 多个靶子重叠时只命中最新生成的一个
func TestHitSystem_NewestFirst(t *testing.T) {
	hs, _ := newTestHitSystem(1)
	rs := hs.state
	addTarget(rs, 100, 80, 1)
	addTarget(rs, 102, 82, 1)
	addTarget(rs, 104, 84, 1)

	hs.Shoot(102, 82)

	if rs.Targets.Live() != 2 {
		t.Fatalf("one shot must destroy exactly one target, live=%d", rs.Targets.Live())
	}
	if rs.Targets.At(0).X != 100 || rs.Targets.At(1).X != 102 {
		t.Errorf("wrong target removed: remaining X = %v, %v", rs.Targets.At(0).X, rs.Targets.At(1).X)
	}
	if rs.Stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", rs.Stats.Hits)
	}
}

// TestHitSystem_HitboxEdges 碰撞盒边长 20*scale，边界包含在内
func TestHitSystem_HitboxEdges(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		x, y  float64
		want  bool
	}{
		{"中心", 1, 100, 80, true},
		{"右边缘", 1, 110, 80, true},
		{"右边缘外", 1, 110.01, 80, false},
		{"左上角", 1, 90, 70, true},
		{"放大后的边缘", 1.25, 112.5, 80, true},
		{"缩小后超出", 0.8, 109, 80, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs, _ := newTestHitSystem(1)
			addTarget(hs.state, 100, 80, tt.scale)

			if got := hs.Shoot(tt.x, tt.y).Hit; got != tt.want {
				t.Errorf("Shoot(%v, %v) hit = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestHitSystem_MissEveryThird 每累计第 3 次空枪触发嘲讽
func TestHitSystem_MissEveryThird(t *testing.T) {
	hs, reaction := newTestHitSystem(2)
	rs := hs.state

	for i := 1; i <= 2; i++ {
		if r := hs.Shoot(5, 5); r.Hit || r.Taunted {
			t.Fatalf("miss %d: unexpected result %+v", i, r)
		}
	}
	if rs.Reactor.Active {
		t.Fatal("reactor should stay quiet before the third miss")
	}

	if r := hs.Shoot(5, 5); !r.Taunted {
		t.Fatal("third miss should trigger the reactor")
	}

	// 显示期间第 6 次 miss 被抑制
	hs.Shoot(5, 5)
	hs.Shoot(5, 5)
	if r := hs.Shoot(5, 5); r.Taunted {
		t.Error("trigger while active must be suppressed")
	}

	for rs.Reactor.Active {
		reaction.Update()
	}
	hs.Shoot(5, 5)
	hs.Shoot(5, 5)
	if r := hs.Shoot(5, 5); !r.Taunted {
		t.Error("ninth miss should trigger again once the message expired")
	}
	if rs.Stats.Misses != 9 || rs.Stats.Shots != 9 || rs.Stats.Score != 0 {
		t.Errorf("stats = %+v", rs.Stats)
	}
}

// TestHitSystem_NonFiniteNeverHits NaN/Inf 坐标永远不会命中
func TestHitSystem_NonFiniteNeverHits(t *testing.T) {
	coords := [][2]float64{
		{math.NaN(), 80},
		{100, math.NaN()},
		{math.Inf(1), 80},
		{100, math.Inf(-1)},
		{-5000, 80},
		{100, 1e9},
	}

	for _, c := range coords {
		hs, _ := newTestHitSystem(1)
		addTarget(hs.state, 100, 80, 1.3)

		if hs.Shoot(c[0], c[1]).Hit {
			t.Errorf("Shoot(%v, %v) should never hit", c[0], c[1])
		}
		if hs.state.Stats.Shots != 1 || hs.state.Stats.Misses != 1 {
			t.Errorf("Shoot(%v, %v): stats = %+v", c[0], c[1], hs.state.Stats)
		}
	}
}

// TestHitSystem_Invariants 任意射击序列下 shots = hits + 射击 miss，score = hits
func TestHitSystem_Invariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hs, _ := newTestHitSystem(rapid.Int64().Draw(rt, "seed"))
		rs := hs.state

		n := rapid.IntRange(0, 10).Draw(rt, "targets")
		for i := 0; i < n; i++ {
			addTarget(rs,
				rapid.Float64Range(0, 320).Draw(rt, "tx"),
				rapid.Float64Range(10, 150).Draw(rt, "ty"),
				rapid.Float64Range(0.8, 1.3).Draw(rt, "scale"))
		}

		shots := rapid.IntRange(0, 30).Draw(rt, "shots")
		for i := 0; i < shots; i++ {
			before := rs.Targets.Live()
			particles := rs.Particles.Live()
			r := hs.Shoot(rapid.Float64Range(-20, 340).Draw(rt, "x"), rapid.Float64Range(-20, 200).Draw(rt, "y"))

			if r.Hit {
				if rs.Targets.Live() != before-1 || rs.Particles.Live() != particles+8 {
					rt.Fatalf("hit must remove one target and add 8 particles")
				}
			} else if rs.Targets.Live() != before || rs.Particles.Live() != particles {
				rt.Fatalf("miss must not change targets or particles")
			}
		}

		st := rs.Stats
		if st.Shots != shots || st.Hits+st.Misses != shots || st.Score != st.Hits {
			rt.Fatalf("stats inconsistent: %+v after %d shots", st, shots)
		}
		if acc := rs.Accuracy(); acc < 0 || acc > 100 {
			rt.Fatalf("accuracy %d out of range", acc)
		}
	})
}
