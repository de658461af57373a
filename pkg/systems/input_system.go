package systems

import (
	"log"

	"github.com/decker502/liquidsim/pkg/components"
	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// 按键绑定
const (
	KeyToggleKind  = ebiten.KeySpace
	KeyToggleErase = ebiten.KeyBackspace
	KeyGridLines   = ebiten.KeyG
	KeyHUD         = ebiten.KeyH
	KeyPause       = ebiten.KeyP
	KeySingleStep  = ebiten.KeyN
	KeyReset       = ebiten.KeyR
)

// InputCommands InputSystem 无法自行完成、需要场景处理的请求
type InputCommands struct {
	// Reset 恢复到场景初始布局
	Reset bool
}

// InputSystem 处理编辑输入：画笔切换、拖动绘制、暂停/单步和叠加层开关
//
// 编辑总是在模拟步骤之前执行（同一帧内严格串行）。
type InputSystem struct {
	entityManager *ecs.EntityManager
	source        InputSource
	cellSize      int
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, source InputSource, cellSize int) *InputSystem {
	return &InputSystem{
		entityManager: em,
		source:        source,
		cellSize:      cellSize,
	}
}

// Update 处理本帧输入
func (s *InputSystem) Update() InputCommands {
	var cmds InputCommands

	gridID, gridComp, ok := ecs.First[*components.LiquidGridComponent](s.entityManager)
	if !ok {
		return cmds
	}

	if state, ok := ecs.GetComponent[*components.SimulationStateComponent](s.entityManager, gridID); ok {
		s.handleSimulationKeys(state)
	}
	if overlay, ok := ecs.GetComponent[*components.OverlayComponent](s.entityManager, gridID); ok {
		s.handleOverlayKeys(overlay)
	}
	if s.source.KeyJustPressed(KeyReset) {
		log.Printf("[InputSystem] 重置网格")
		cmds.Reset = true
	}

	_, brush, ok := ecs.First[*components.BrushComponent](s.entityManager)
	if !ok {
		return cmds
	}
	if s.source.KeyJustPressed(KeyToggleKind) {
		brush.Brush.ToggleKind()
	}
	if s.source.KeyJustPressed(KeyToggleErase) {
		brush.Brush.ToggleMode()
	}

	// 重置请求的这一帧不绘制，避免把拖动中的笔画写进刚恢复的网格
	if !cmds.Reset {
		s.paint(brush, gridComp)
	}
	return cmds
}

func (s *InputSystem) handleSimulationKeys(state *components.SimulationStateComponent) {
	if s.source.KeyJustPressed(KeyPause) {
		state.Paused = !state.Paused
		if !state.Paused && state.Err != nil {
			log.Printf("[InputSystem] 清除模拟错误后恢复: %v", state.Err)
			state.Err = nil
		}
		log.Printf("[InputSystem] paused=%v", state.Paused)
	}
	if state.Paused && s.source.KeyJustPressed(KeySingleStep) {
		state.StepRequests++
	}
}

func (s *InputSystem) handleOverlayKeys(overlay *components.OverlayComponent) {
	if s.source.KeyJustPressed(KeyGridLines) {
		overlay.ShowGridLines = !overlay.ShowGridLines
	}
	if s.source.KeyJustPressed(KeyHUD) {
		overlay.ShowHUD = !overlay.ShowHUD
	}
}

// paint 指针按下时沿上一帧位置到当前位置绘制
func (s *InputSystem) paint(brush *components.BrushComponent, grid *components.LiquidGridComponent) {
	if !s.source.PointerPressed() {
		brush.Stroking = false
		return
	}

	x, y := s.source.PointerPosition()
	col, row := config.PixelToCell(x, y, s.cellSize)

	if brush.Stroking {
		brush.Brush.PaintStroke(grid.Grid, brush.LastCol, brush.LastRow, col, row)
	} else {
		brush.Brush.Paint(grid.Grid, col, row)
	}
	brush.Stroking = true
	brush.LastCol, brush.LastRow = col, row
}
