// Package scenes 提供具体场景实现
package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/liquidsim/pkg/components"
	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/ecs"
	"github.com/decker502/liquidsim/pkg/editor"
	"github.com/decker502/liquidsim/pkg/game"
	"github.com/decker502/liquidsim/pkg/liquid"
	"github.com/decker502/liquidsim/pkg/render"
	"github.com/decker502/liquidsim/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SimulationScene 液体模拟场景
//
// 每帧顺序：InputSystem 编辑网格 → SimulationSystem 推进模拟 → RenderSystem 绘制。
type SimulationScene struct {
	cfg      *config.SimulationConfig
	scenario *config.Scenario
	settings *game.SettingsManager

	entityManager *ecs.EntityManager
	gridComp      *components.LiquidGridComponent
	stateComp     *components.SimulationStateComponent
	overlayComp   *components.OverlayComponent
	brushComp     *components.BrushComponent

	inputSystem      *systems.InputSystem
	simulationSystem *systems.SimulationSystem
	renderSystem     *systems.RenderSystem
}

// NewSimulationScene 创建模拟场景
//
// 参数:
//   - cfg: 模拟配置
//   - scenario: 初始布局，nil 表示空白网格（窗口大小）
//   - settings: 用户偏好，可为 nil（使用配置中的初始值，不保存）
//   - input: 输入源
func NewSimulationScene(cfg *config.SimulationConfig, scenario *config.Scenario, settings *game.SettingsManager, input systems.InputSource) (*SimulationScene, error) {
	sim, err := liquid.NewSimulator(cfg.Params())
	if err != nil {
		return nil, fmt.Errorf("failed to create simulator: %w", err)
	}

	var grid *liquid.Grid
	name := ""
	if scenario != nil {
		name = scenario.Name
		grid, err = scenario.NewGrid(cfg.Columns(), cfg.Rows())
	} else {
		grid, err = liquid.NewGrid(cfg.Columns(), cfg.Rows())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	s := &SimulationScene{
		cfg:           cfg,
		scenario:      scenario,
		settings:      settings,
		entityManager: ecs.NewEntityManager(),
		gridComp:      &components.LiquidGridComponent{Grid: grid, Scenario: name},
		stateComp:     &components.SimulationStateComponent{},
		overlayComp:   &components.OverlayComponent{ShowGridLines: cfg.Grid.ShowLines, ShowHUD: true},
		brushComp:     &components.BrushComponent{Brush: editor.NewBrush(cfg.Editor.InitialKind)},
	}
	if settings != nil {
		us := settings.GetSettings()
		s.overlayComp.ShowGridLines = us.ShowGridLines
		s.overlayComp.ShowHUD = us.ShowHUD
		s.brushComp.Brush.Kind = us.BrushKind
		if us.EraseMode {
			s.brushComp.Brush.Mode = editor.ModeErase
		}
	}

	gridID := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(gridID, s.gridComp)
	s.entityManager.AddComponent(gridID, s.stateComp)
	s.entityManager.AddComponent(gridID, s.overlayComp)
	brushID := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(brushID, s.brushComp)

	s.inputSystem = systems.NewInputSystem(s.entityManager, input, cfg.Grid.CellSize)
	s.simulationSystem = systems.NewSimulationSystem(s.entityManager, sim,
		game.NewFixedStep(cfg.Simulation.TickInterval, cfg.Simulation.MaxTicksPerFrame))
	s.renderSystem = systems.NewRenderSystem(s.entityManager, render.NewRenderer(render.StyleFromConfig(cfg)))

	log.Printf("[SimulationScene] 创建场景 %q: %dx%d 网格, 总填充量 %.3f",
		name, grid.Columns(), grid.Rows(), liquid.TotalFill(grid))
	return s, nil
}

// Update 处理输入并推进模拟
func (s *SimulationScene) Update(deltaTime float64) {
	cmds := s.inputSystem.Update()
	if cmds.Reset {
		s.Reset()
	}
	s.simulationSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制网格和状态行
func (s *SimulationScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// Reset 清空网格并恢复初始布局，同时清除模拟错误
func (s *SimulationScene) Reset() {
	editor.Clear(s.gridComp.Grid)
	if s.scenario != nil {
		// 网格由同一场景创建，区域不会越界
		if err := s.scenario.Apply(s.gridComp.Grid); err != nil {
			log.Printf("[SimulationScene] 恢复场景失败: %v", err)
		}
	}
	s.stateComp.Err = nil
	s.stateComp.LastStats = liquid.StepStats{}
	s.brushComp.Stroking = false
}

// ScreenSize 逻辑屏幕尺寸（网格像素尺寸）
//
// 小场景（例如 5x8）由 ebiten 放大到窗口。
func (s *SimulationScene) ScreenSize() (int, int) {
	g := s.gridComp.Grid
	return g.Columns() * s.cfg.Grid.CellSize, g.Rows() * s.cfg.Grid.CellSize
}

// Grid 返回场景的液体网格
func (s *SimulationScene) Grid() *liquid.Grid {
	return s.gridComp.Grid
}

// SyncSettings 把当前画笔和叠加层状态写入用户设置（不保存）
func (s *SimulationScene) SyncSettings() {
	if s.settings == nil {
		return
	}
	s.settings.SetBrush(s.brushComp.Brush.Kind, s.brushComp.Brush.Mode == editor.ModeErase)
	s.settings.SetShowGridLines(s.overlayComp.ShowGridLines)
	s.settings.SetShowHUD(s.overlayComp.ShowHUD)
}

// SaveOnExit 实现 game.Saveable：退出时保存用户偏好
func (s *SimulationScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	s.SyncSettings()
	if err := s.settings.Save(); err != nil {
		log.Printf("[SimulationScene] 保存设置失败: %v", err)
		return false
	}
	return true
}
