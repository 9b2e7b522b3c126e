package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestDefaultRangeConfig 验证默认值与靶场规则常量一致
func TestDefaultRangeConfig(t *testing.T) {
	cfg := DefaultRangeConfig()

	if cfg.Spawn.Interval != 60 {
		t.Errorf("Spawn.Interval: got %d, want 60", cfg.Spawn.Interval)
	}
	if cfg.Spawn.SpeedX != (FloatRange{Min: 0.5, Max: 1.5}) {
		t.Errorf("Spawn.SpeedX: got %+v", cfg.Spawn.SpeedX)
	}
	if cfg.Spawn.SpeedY != (FloatRange{Min: -0.5, Max: 0.5}) {
		t.Errorf("Spawn.SpeedY: got %+v", cfg.Spawn.SpeedY)
	}
	if cfg.Spawn.Scale != (FloatRange{Min: 0.8, Max: 1.3}) {
		t.Errorf("Spawn.Scale: got %+v", cfg.Spawn.Scale)
	}
	if cfg.Target.Hitbox != 20 {
		t.Errorf("Target.Hitbox: got %v, want 20", cfg.Target.Hitbox)
	}
	if cfg.Target.BounceMinY != 10 || cfg.Target.BounceMaxY != 150 {
		t.Errorf("bounce band: got [%v, %v], want [10, 150]", cfg.Target.BounceMinY, cfg.Target.BounceMaxY)
	}
	if cfg.Particle.Burst != 8 || cfg.Particle.Life != 30 {
		t.Errorf("particle: got burst=%d life=%d, want 8/30", cfg.Particle.Burst, cfg.Particle.Life)
	}
	if cfg.Reaction.Duration != 90 || cfg.Reaction.MissEvery != 3 {
		t.Errorf("reaction: got duration=%d missEvery=%d, want 90/3", cfg.Reaction.Duration, cfg.Reaction.MissEvery)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestDefaultTauntsNotShared 修改返回的配置不应影响全局默认值
func TestDefaultTauntsNotShared(t *testing.T) {
	cfg := DefaultRangeConfig()
	cfg.Reaction.Taunts[0] = "changed"

	if DefaultTaunts[0] == "changed" {
		t.Error("DefaultRangeConfig should copy DefaultTaunts")
	}
}

// TestEmbeddedRangeConfigMatchesDefaults data/range.yaml 必须与默认值一致
func TestEmbeddedRangeConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadRangeConfig(filepath.Join("..", "..", RangeConfigPath))
	if err != nil {
		t.Fatalf("LoadRangeConfig() error: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultRangeConfig()) {
		t.Errorf("data/range.yaml differs from DefaultRangeConfig():\n got %+v\nwant %+v", cfg, DefaultRangeConfig())
	}
}

func TestParseRangeConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *RangeConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
spawn:
  interval: 30
`,
			validate: func(t *testing.T, cfg *RangeConfig) {
				if cfg.Spawn.Interval != 30 {
					t.Errorf("Spawn.Interval: got %d, want 30", cfg.Spawn.Interval)
				}
				if cfg.Particle.Burst != 8 {
					t.Errorf("Particle.Burst should keep default 8, got %d", cfg.Particle.Burst)
				}
				if len(cfg.Reaction.Taunts) != len(DefaultTaunts) {
					t.Errorf("Taunts should keep defaults, got %d", len(cfg.Reaction.Taunts))
				}
			},
		},
		{
			name: "custom taunts replace defaults",
			yamlContent: `
reaction:
  taunts: ["ONE", "TWO"]
`,
			validate: func(t *testing.T, cfg *RangeConfig) {
				if !reflect.DeepEqual(cfg.Reaction.Taunts, []string{"ONE", "TWO"}) {
					t.Errorf("Taunts: got %v", cfg.Reaction.Taunts)
				}
			},
		},
		{
			name: "zero interval rejected",
			yamlContent: `
spawn:
  interval: 0
`,
			wantErr:     true,
			errContains: "spawn interval",
		},
		{
			name: "inverted scale range rejected",
			yamlContent: `
spawn:
  scale:
    min: 2
    max: 1
`,
			wantErr:     true,
			errContains: "scale range invalid",
		},
		{
			name: "inverted bounce band rejected",
			yamlContent: `
target:
  bounceMinY: 150
  bounceMaxY: 10
`,
			wantErr:     true,
			errContains: "bounce band",
		},
		{
			name: "empty taunts rejected",
			yamlContent: `
reaction:
  taunts: []
`,
			wantErr:     true,
			errContains: "taunts",
		},
		{
			name:        "malformed yaml",
			yamlContent: "spawn: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseRangeConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadRangeConfigMissingFile(t *testing.T) {
	_, err := LoadRangeConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestControlButtonBounds(t *testing.T) {
	left, top, right, bottom := ControlButtonBounds()
	if right-left != ControlButtonWidth || bottom-top != ControlButtonHeight {
		t.Errorf("button size: got %vx%v", right-left, bottom-top)
	}
	if (left+right)/2 != LogicalWidth/2 {
		t.Errorf("button should be horizontally centered, center=%v", (left+right)/2)
	}
}
