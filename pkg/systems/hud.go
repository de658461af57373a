package systems

import (
	"fmt"
	"strings"

	"github.com/decker502/liquidsim/pkg/components"
	"github.com/decker502/liquidsim/pkg/liquid"
)

// HUDText 状态行文本
//
// 第一行：画笔、总填充量、最大填充量、步数和运行状态；
// 第二行：按键提示（移动端改为触摸提示）；出错时追加错误信息。
func HUDText(brush *components.BrushComponent, state *components.SimulationStateComponent, m liquid.Measurement, scenario string, touch bool) string {
	var b strings.Builder

	if brush != nil {
		fmt.Fprintf(&b, "brush: %-5s", brush.Brush.Label())
	}
	fmt.Fprintf(&b, "  fill: %.3f  max: %.3f", m.TotalFill, m.MaxFill)

	status := "running"
	var tick uint64
	if state != nil {
		tick = state.LastStats.Tick
		if state.Paused {
			status = "paused"
		}
	}
	fmt.Fprintf(&b, "  tick: %d  %s", tick, status)
	if scenario != "" {
		fmt.Fprintf(&b, "  [%s]", scenario)
	}

	if touch {
		b.WriteString("\ndrag to paint")
	} else {
		b.WriteString("\nSpace kind  Backspace erase  G grid  H hud  P pause  N step  R reset  1-9 scenario  F11 fullscreen")
	}

	if state != nil && state.Err != nil {
		fmt.Fprintf(&b, "\nerror: %v (P to resume)", state.Err)
	}
	return b.String()
}
