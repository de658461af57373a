package components

import "github.com/decker502/liquidsim/pkg/liquid"

// LiquidGridComponent 标识液体网格实体
//
// 网格是唯一的模拟状态，由 SimulationSystem 推进、
// InputSystem 编辑、RenderSystem 读取。
type LiquidGridComponent struct {
	Grid *liquid.Grid
	// Scenario 初始布局名称（空表示空白网格），按 R 清空后恢复到此布局
	Scenario string
}
