package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager，存储目录位于临时目录
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	appName := fmt.Sprintf("aimrange_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

func TestScoreStoreDefaultsToZero(t *testing.T) {
	store := NewScoreStore(createTestGdataManager(t, "default"))

	if got := store.LoadBest(); got != 0 {
		t.Errorf("Expected 0 with no stored value, got %d", got)
	}
}

func TestScoreStoreRoundTrip(t *testing.T) {
	manager := createTestGdataManager(t, "roundtrip")

	NewScoreStore(manager).SaveBest(42)

	// 新实例从存储读取
	if got := NewScoreStore(manager).LoadBest(); got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}
}

func TestScoreStoreCorruptRecord(t *testing.T) {
	manager := createTestGdataManager(t, "corrupt")
	if err := manager.SaveObjectProp(rangeObject, rangeProperty, []byte("best: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	if got := NewScoreStore(manager).LoadBest(); got != 0 {
		t.Errorf("Corrupt record should default to 0, got %d", got)
	}
}

func TestScoreStoreNilGdata(t *testing.T) {
	store := NewScoreStore(nil)

	if got := store.LoadBest(); got != 0 {
		t.Errorf("Expected 0 in degraded mode, got %d", got)
	}

	store.SaveBest(17)
	if got := store.LoadBest(); got != 17 {
		t.Errorf("Degraded mode should keep value in memory, got %d", got)
	}
}

func TestMemoryScoreStore(t *testing.T) {
	var store BestScoreStore = &MemoryScoreStore{Best: 30}

	if got := store.LoadBest(); got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}
	store.SaveBest(42)

	mem := store.(*MemoryScoreStore)
	if mem.Best != 42 || mem.Writes != 1 {
		t.Errorf("Expected Best=42 Writes=1, got Best=%d Writes=%d", mem.Best, mem.Writes)
	}
}
