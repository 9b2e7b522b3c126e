package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RangeConfigPath 嵌入式靶场配置文件路径
const RangeConfigPath = "data/range.yaml"

// RangeConfig 靶场小游戏配置
//
// 配置文件位置: data/range.yaml
// 所有时间单位为 tick，距离单位为模拟单位。
type RangeConfig struct {
	Spawn    SpawnConfig    `yaml:"spawn"`
	Target   TargetConfig   `yaml:"target"`
	Particle ParticleConfig `yaml:"particle"`
	Reaction ReactionConfig `yaml:"reaction"`
	Storage  StorageConfig  `yaml:"storage"`
}

// SpawnConfig 靶子生成参数
type SpawnConfig struct {
	// Interval 生成间隔（tick）
	Interval int `yaml:"interval"`

	// Margin 生成点位于水平边界外侧的距离，同时也是逃脱判定的边距
	Margin float64 `yaml:"margin"`

	// SpeedX 水平速度绝对值范围
	SpeedX FloatRange `yaml:"speedX"`

	// SpeedY 垂直速度范围
	SpeedY FloatRange `yaml:"speedY"`

	// Scale 靶子缩放范围
	Scale FloatRange `yaml:"scale"`

	// Y 生成点 Y 坐标范围
	Y FloatRange `yaml:"y"`
}

// TargetConfig 靶子物理与碰撞参数
type TargetConfig struct {
	Hitbox     float64 `yaml:"hitbox"`     // 碰撞盒基础边长，实际边长 = Hitbox * Scale
	MaxLife    int     `yaml:"maxLife"`    // 最大存活 tick，耗尽视为逃脱
	BounceMinY float64 `yaml:"bounceMinY"` // 上反弹边界
	BounceMaxY float64 `yaml:"bounceMaxY"` // 下反弹边界
}

// ParticleConfig 命中粒子参数
type ParticleConfig struct {
	Burst int     `yaml:"burst"` // 每次命中生成的粒子数
	Life  int     `yaml:"life"`  // 粒子寿命（tick）
	Speed float64 `yaml:"speed"` // 粒子速度分量的最大绝对值
}

// ReactionConfig 嘲讽角色参数
type ReactionConfig struct {
	Duration  int      `yaml:"duration"`  // 消息显示时长（tick）
	MissEvery int      `yaml:"missEvery"` // 每累计 N 次空枪触发一次
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	Scale     float64  `yaml:"scale"`
	Taunts    []string `yaml:"taunts"`
}

// StorageConfig 本地存储参数
type StorageConfig struct {
	// AppName gdata 应用名（浏览器中作为 localStorage 键前缀）
	AppName string `yaml:"appName"`
}

// FloatRange 闭区间 [Min, Max]
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultTaunts 默认嘲讽文本
var DefaultTaunts = []string{
	"TOO SLOW!",
	"AIM HIGHER.",
	"WAS THAT ON PURPOSE?",
	"MY GRANDMA FLICKS FASTER.",
	"HEADSHOTS, NOT AIRSHOTS.",
	"TRY OPENING YOUR EYES.",
	"BOTS HIT MORE THAN THAT.",
	"NICE WALL. HIT THE TARGET.",
}

// DefaultRangeConfig 返回默认配置，与 data/range.yaml 保持一致
func DefaultRangeConfig() *RangeConfig {
	taunts := make([]string, len(DefaultTaunts))
	copy(taunts, DefaultTaunts)

	return &RangeConfig{
		Spawn: SpawnConfig{
			Interval: 60,
			Margin:   10,
			SpeedX:   FloatRange{Min: 0.5, Max: 1.5},
			SpeedY:   FloatRange{Min: -0.5, Max: 0.5},
			Scale:    FloatRange{Min: 0.8, Max: 1.3},
			Y:        FloatRange{Min: 30, Max: 130},
		},
		Target: TargetConfig{
			Hitbox:     20,
			MaxLife:    720,
			BounceMinY: 10,
			BounceMaxY: 150,
		},
		Particle: ParticleConfig{
			Burst: 8,
			Life:  30,
			Speed: 1.5,
		},
		Reaction: ReactionConfig{
			Duration:  90,
			MissEvery: 3,
			X:         290,
			Y:         150,
			Scale:     2,
			Taunts:    taunts,
		},
		Storage: StorageConfig{
			AppName: "aimrange",
		},
	}
}

// LoadRangeConfig 从磁盘加载靶场配置
//
// 参数:
//   - path: 配置文件路径（如 "data/range.yaml"）
//
// 返回:
//   - *RangeConfig: 加载成功后的配置结构（缺省字段保留默认值）
//   - error: 读取、解析或验证失败时返回错误
func LoadRangeConfig(path string) (*RangeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read range config: %w", err)
	}
	return ParseRangeConfig(data)
}

// ParseRangeConfig 解析 YAML 格式的靶场配置
// 解析结果覆盖在默认配置之上，因此配置文件只需包含需要修改的字段
func ParseRangeConfig(data []byte) (*RangeConfig, error) {
	cfg := DefaultRangeConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse range config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid range config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *RangeConfig) Validate() error {
	if c.Spawn.Interval <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %d", c.Spawn.Interval)
	}
	if c.Spawn.Margin < 0 {
		return fmt.Errorf("spawn margin must not be negative, got %.1f", c.Spawn.Margin)
	}

	ranges := []struct {
		name string
		r    FloatRange
	}{
		{"speedX", c.Spawn.SpeedX},
		{"speedY", c.Spawn.SpeedY},
		{"scale", c.Spawn.Scale},
		{"y", c.Spawn.Y},
	}
	for _, item := range ranges {
		if item.r.Min > item.r.Max {
			return fmt.Errorf("spawn %s range invalid: min(%.2f) > max(%.2f)", item.name, item.r.Min, item.r.Max)
		}
	}

	if c.Spawn.SpeedX.Min <= 0 {
		return fmt.Errorf("spawn speedX min must be positive, got %.2f", c.Spawn.SpeedX.Min)
	}
	if c.Spawn.Scale.Min <= 0 {
		return fmt.Errorf("spawn scale min must be positive, got %.2f", c.Spawn.Scale.Min)
	}

	if c.Target.Hitbox <= 0 {
		return fmt.Errorf("target hitbox must be positive, got %.1f", c.Target.Hitbox)
	}
	if c.Target.MaxLife <= 0 {
		return fmt.Errorf("target maxLife must be positive, got %d", c.Target.MaxLife)
	}
	if c.Target.BounceMinY >= c.Target.BounceMaxY {
		return fmt.Errorf("target bounce band invalid: min(%.1f) >= max(%.1f)", c.Target.BounceMinY, c.Target.BounceMaxY)
	}

	if c.Particle.Burst < 0 {
		return fmt.Errorf("particle burst must not be negative, got %d", c.Particle.Burst)
	}
	if c.Particle.Life <= 0 {
		return fmt.Errorf("particle life must be positive, got %d", c.Particle.Life)
	}

	if c.Reaction.Duration <= 0 {
		return fmt.Errorf("reaction duration must be positive, got %d", c.Reaction.Duration)
	}
	if c.Reaction.MissEvery <= 0 {
		return fmt.Errorf("reaction missEvery must be positive, got %d", c.Reaction.MissEvery)
	}
	if len(c.Reaction.Taunts) == 0 {
		return fmt.Errorf("reaction taunts must not be empty")
	}

	if c.Storage.AppName == "" {
		return fmt.Errorf("storage appName must not be empty")
	}

	return nil
}
