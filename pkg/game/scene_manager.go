package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene

	// 最近一次的外部尺寸，切换场景时转发给新场景
	outsideWidth, outsideHeight int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.outsideWidth > 0 {
		r.Resize(sm.outsideWidth, sm.outsideHeight)
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 转发窗口尺寸变化，尺寸未变化时不做任何事
func (sm *SceneManager) Resize(outsideWidth, outsideHeight int) {
	if outsideWidth == sm.outsideWidth && outsideHeight == sm.outsideHeight {
		return
	}
	sm.outsideWidth, sm.outsideHeight = outsideWidth, outsideHeight

	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(outsideWidth, outsideHeight)
	}
}

// SaveOnExit 在程序退出前保存当前场景状态
func (sm *SceneManager) SaveOnExit() bool {
	s, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}

	saved := s.SaveOnExit()
	if !saved {
		log.Printf("[SceneManager] Warning: current scene failed to save on exit")
	}
	return saved
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
