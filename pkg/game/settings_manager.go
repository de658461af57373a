package game

import (
	"fmt"
	"log"

	"github.com/decker502/liquidsim/pkg/liquid"
	"github.com/decker502/liquidsim/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// UserSettings 用户界面偏好
// 注意：这些只是界面偏好，网格内容不会持久化
type UserSettings struct {
	ShowGridLines bool        `yaml:"showGridLines"` // 网格线叠加层
	ShowHUD       bool        `yaml:"showHud"`       // 左上角状态行
	BrushKind     liquid.Kind `yaml:"brushKind"`     // 上次使用的画笔类型
	EraseMode     bool        `yaml:"eraseMode"`     // 上次是否处于擦除模式
	Fullscreen    bool        `yaml:"fullscreen"`    // 启动时是否全屏
}

// DefaultSettings 返回默认设置
//
// 参数：
//   - brushKind: 初始画笔类型（来自 editor.initialKind）
//   - showGridLines: 是否显示网格线（来自 grid.showLines）
func DefaultSettings(brushKind liquid.Kind, showGridLines bool) *UserSettings {
	return &UserSettings{
		ShowGridLines: showGridLines,
		ShowHUD:       true,
		BrushKind:     brushKind,
	}
}

// SettingsManager 设置管理器
// 负责用户偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	defaults     UserSettings
	settings     *UserSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - defaults: 没有已保存设置时使用的默认值
//
// 加载失败不是致命错误，会记录日志并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager, defaults *UserSettings) *SettingsManager {
	if defaults == nil {
		defaults = DefaultSettings(liquid.Solid, false)
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     *defaults,
	}
	sm.resetToDefaults()

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// OpenStorage 打开 gdata 存储
// 失败时返回 nil 和错误，调用方可以继续以降级模式运行
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(appName); err != nil {
		return nil, err
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage %q: %w", appName, err)
	}
	return m, nil
}

func (sm *SettingsManager) resetToDefaults() {
	s := sm.defaults
	sm.settings = &s
}

// Persistent 是否能持久化（非降级模式）
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.resetToDefaults()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始反序列化，旧版本文件缺少的字段保持默认
	loaded := sm.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded: brush=%s erase=%v gridLines=%v",
		loaded.BrushKind, loaded.EraseMode, loaded.ShowGridLines)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *UserSettings {
	return sm.settings
}

// SetShowGridLines 设置网格线开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowGridLines(show bool) {
	sm.settings.ShowGridLines = show
}

// SetShowHUD 设置状态行开关
func (sm *SettingsManager) SetShowHUD(show bool) {
	sm.settings.ShowHUD = show
}

// SetBrush 记录画笔状态
func (sm *SettingsManager) SetBrush(kind liquid.Kind, erase bool) {
	sm.settings.BrushKind = kind
	sm.settings.EraseMode = erase
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
