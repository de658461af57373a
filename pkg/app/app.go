// Package app 提供液体模拟应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/game"
	"github.com/decker502/liquidsim/pkg/scenes"
	"github.com/decker502/liquidsim/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StorageAppName gdata 存储目录名
const StorageAppName = "liquidsim"

// ErrUnknownScenario 场景名称不存在
var ErrUnknownScenario = errors.New("unknown scenario")

// scenarioKeys 数字键 1-9 依次加载场景预设，0 加载空白网格
var scenarioKeys = []ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Simulation 模拟配置，nil 时使用默认配置
	Simulation *config.SimulationConfig
	// Scenarios 场景预设，可为 nil
	Scenarios *config.ScenarioFile
	// Scenario 启动时加载的场景名称，为空则使用空白网格
	Scenario string
	// DisableStorage 不打开 gdata 存储（用户设置只保存在内存中）
	DisableStorage bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.SimulationConfig
	scenarios    *config.ScenarioFile
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	simCfg := cfg.Simulation
	if simCfg == nil {
		simCfg = config.DefaultSimulationConfig()
	}

	// 用户设置：存储不可用时降级为内存模式
	var settings *game.SettingsManager
	defaults := game.DefaultSettings(simCfg.Editor.InitialKind, simCfg.Grid.ShowLines)
	if cfg.DisableStorage {
		settings = game.NewSettingsManager(nil, defaults)
	} else {
		storage, err := game.OpenStorage(StorageAppName)
		if err != nil {
			log.Printf("[App] Warning: %v (settings will not persist)", err)
		}
		settings = game.NewSettingsManager(storage, defaults)
	}

	a := &App{
		cfg:          simCfg,
		scenarios:    cfg.Scenarios,
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		verbose:      cfg.Verbose,
	}

	input := systems.NewEbitenInput()
	a.sceneManager.SetSceneFactory(func(name string) game.Scene {
		scene, err := a.newScene(name, input)
		if err != nil {
			log.Printf("[App] 创建场景失败: %v", err)
			return nil
		}
		return scene
	})

	if cfg.Scenario != "" {
		if _, err := a.lookupScenario(cfg.Scenario); err != nil {
			return nil, err
		}
	}
	if !a.sceneManager.LoadScenario(cfg.Scenario) {
		return nil, fmt.Errorf("failed to create scene %q", cfg.Scenario)
	}
	log.Printf("[App] Starting scenario %q", cfg.Scenario)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return a, nil
}

// lookupScenario 按名称查找场景预设，空名称返回 nil
func (a *App) lookupScenario(name string) (*config.Scenario, error) {
	if name == "" {
		return nil, nil
	}
	if a.scenarios == nil {
		return nil, fmt.Errorf("%w %q: no scenarios loaded", ErrUnknownScenario, name)
	}
	sc, ok := a.scenarios.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownScenario, name, a.scenarios.Names())
	}
	return sc, nil
}

func (a *App) newScene(name string, input systems.InputSource) (*scenes.SimulationScene, error) {
	sc, err := a.lookupScenario(name)
	if err != nil {
		return nil, err
	}
	// 切换前保存当前场景的画笔状态，新场景沿用
	if cur, ok := a.sceneManager.GetCurrentScene().(*scenes.SimulationScene); ok {
		cur.SyncSettings()
	}
	return scenes.NewSimulationScene(a.cfg, sc, a.settings, input)
}

// Settings 返回用户设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Update 更新逻辑，每个 tick 调用一次
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	for i, key := range scenarioKeys {
		if inpututil.IsKeyJustPressed(key) {
			a.loadScenarioIndex(i)
			break
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	a.settings.SetFullscreen(fullscreen)
	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// loadScenarioIndex 0 为空白网格，i >= 1 为第 i 个预设
func (a *App) loadScenarioIndex(i int) {
	name := ""
	if i > 0 {
		if a.scenarios == nil || i > len(a.scenarios.Scenarios) {
			return
		}
		name = a.scenarios.Scenarios[i-1].Name
	}
	a.sceneManager.LoadScenario(name)
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// sized 能报告自身逻辑尺寸的场景
type sized interface {
	ScreenSize() (int, int)
}

// Layout 返回逻辑屏幕尺寸，即当前网格的像素尺寸
// 小于窗口的场景由 ebiten 等比放大
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s, ok := a.sceneManager.GetCurrentScene().(sized); ok {
		return s.ScreenSize()
	}
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// SaveOnExit 保存当前场景的用户偏好
func (a *App) SaveOnExit() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !s.SaveOnExit() {
			log.Printf("[App] Warning: failed to save settings on exit")
		}
		return
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
