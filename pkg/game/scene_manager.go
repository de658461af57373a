package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 按场景预设名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(scenario string) Scene

// SceneManager 控制当前活动场景
// 同一时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory
}

// NewSceneManager 创建没有活动场景的管理器，使用 SwitchTo 或 LoadScenario 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentScenario 返回当前场景对应的预设名称（空表示空白网格）
func (sm *SceneManager) CurrentScenario() string {
	return sm.currentName
}

// LoadScenario 通过工厂创建指定预设的场景并切换
// 返回是否切换成功
func (sm *SceneManager) LoadScenario(name string) bool {
	log.Printf("[SceneManager] 加载场景: %q", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %q", name)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentName = name
	return true
}

// Update 更新当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
