package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BestScoreStore 历史最高分存储接口
// 会话模块通过构造函数注入，测试中可替换为内存实现
type BestScoreStore interface {
	// LoadBest 读取历史最高分，不存在时返回 0
	LoadBest() int
	// SaveBest 写入历史最高分（尽力而为）
	SaveBest(score int)
}

// 存储路径常量
const (
	rangeObject   = "range"
	rangeProperty = "best"
)

// RangeRecord 持久化的靶场记录
type RangeRecord struct {
	Best int `yaml:"best"`
}

// ScoreStore 基于 gdata 的最高分存储
//
// 浏览器中 gdata 使用 localStorage，桌面和移动端使用应用数据目录。
// gdataManager 为 nil 时进入降级模式：仅内存保存，进程退出后丢失。
type ScoreStore struct {
	gdataManager *gdata.Manager
	best         int // 降级模式下的内存值，同时作为最近一次写入的缓存
}

// NewScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewScoreStore(gdataManager *gdata.Manager) *ScoreStore {
	return &ScoreStore{gdataManager: gdataManager}
}

// LoadBest 读取历史最高分
// 读取或解析失败时记录警告并返回 0，不视为错误
func (s *ScoreStore) LoadBest() int {
	record, err := s.load()
	if err != nil {
		log.Printf("[ScoreStore] Warning: Failed to load best score: %v (using 0)", err)
		return 0
	}
	s.best = record.Best
	return record.Best
}

// SaveBest 写入历史最高分
// 写入失败只记录日志
func (s *ScoreStore) SaveBest(score int) {
	s.best = score
	if err := s.save(RangeRecord{Best: score}); err != nil {
		log.Printf("[ScoreStore] Warning: Failed to save best score %d: %v", score, err)
		return
	}
	log.Printf("[ScoreStore] Best score saved: %d", score)
}

func (s *ScoreStore) load() (RangeRecord, error) {
	// 降级模式
	if s.gdataManager == nil {
		return RangeRecord{Best: s.best}, nil
	}

	if !s.gdataManager.ObjectPropExists(rangeObject, rangeProperty) {
		return RangeRecord{}, nil
	}

	data, err := s.gdataManager.LoadObjectProp(rangeObject, rangeProperty)
	if err != nil {
		return RangeRecord{}, fmt.Errorf("failed to load range record: %w", err)
	}

	var record RangeRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return RangeRecord{}, fmt.Errorf("failed to unmarshal range record: %w", err)
	}
	if record.Best < 0 {
		record.Best = 0
	}

	return record, nil
}

func (s *ScoreStore) save(record RangeRecord) error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&record)
	if err != nil {
		return fmt.Errorf("failed to marshal range record: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(rangeObject, rangeProperty, data); err != nil {
		return fmt.Errorf("failed to save range record: %w", err)
	}

	return nil
}

// MemoryScoreStore 纯内存最高分存储（测试与无头模拟使用）
type MemoryScoreStore struct {
	Best   int
	Writes int // SaveBest 调用次数
}

// LoadBest 实现 BestScoreStore
func (m *MemoryScoreStore) LoadBest() int {
	return m.Best
}

// SaveBest 实现 BestScoreStore
func (m *MemoryScoreStore) SaveBest(score int) {
	m.Best = score
	m.Writes++
}
