// Package render 把液体网格绘制为彩色矩形
//
// 几何计算（每个格子画什么、画在哪）与 ebiten 绘制分开，
// 前者是纯函数，可以在没有窗口的情况下测试。
package render

import (
	"image/color"
	"math"

	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/liquid"
)

// Rect 像素矩形
type Rect struct {
	X, Y, W, H float32
}

// Empty 宽或高不为正
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Style 渲染样式
type Style struct {
	CellSize          int
	LineWidth         int
	FountainThreshold float64
	Background        color.Color
	Water             color.Color
	Solid             color.Color
	GridLine          color.Color
	HUD               color.Color
}

// StyleFromConfig 从模拟配置构造样式
func StyleFromConfig(cfg *config.SimulationConfig) Style {
	c := cfg.Render.Colors
	return Style{
		CellSize:          cfg.Grid.CellSize,
		LineWidth:         cfg.Grid.LineWidth,
		FountainThreshold: cfg.Render.FountainThreshold,
		Background:        c.Background.NRGBA,
		Water:             c.Water.NRGBA,
		Solid:             c.Solid.NRGBA,
		GridLine:          c.GridLine.NRGBA,
		HUD:               c.HUD.NRGBA,
	}
}

// CellRect 格子 (col, row) 占据的完整矩形
func CellRect(col, row, cellSize int) Rect {
	s := float32(cellSize)
	return Rect{X: float32(col) * s, Y: float32(row) * s, W: s, H: s}
}

// WaterRect 水格子的填充矩形
//
// 高度与填充量成正比（超过 1 时按满格画），贴着格子底部。
// continuous 为 true 时（上方也有水流经过）画满整格，使下落的水柱连续。
// 填充量不为正时返回空矩形。
func WaterRect(col, row, cellSize int, fill float64, continuous bool) Rect {
	full := CellRect(col, row, cellSize)
	if continuous {
		return full
	}
	if !(fill > 0) {
		return Rect{}
	}
	h := float32(math.Min(fill, 1) * float64(cellSize))
	return Rect{X: full.X, Y: full.Y + full.H - h, W: full.W, H: h}
}

// Continuous 判断水格子是否处于连续水柱中
// 自身和正上方的水格子都超过阈值
func Continuous(current liquid.Cell, above *liquid.Cell, threshold float64) bool {
	if above == nil || !current.IsWater() || !above.IsWater() {
		return false
	}
	return current.Fill > threshold && above.Fill > threshold
}

// Shape 一个待绘制的矩形
type Shape struct {
	Rect  Rect
	Color color.Color
}

// AppendCellShapes 按行优先顺序计算所有非空格子的矩形并追加到 dst
//
// 背景不在其中（由调用方整体清屏）：固体画满格，水按填充量画。
// cells 必须是 columns 列的行优先切片（Grid.AppendCells 的结果）。
func AppendCellShapes(dst []Shape, cells []liquid.Cell, columns int, style Style) []Shape {
	for i, c := range cells {
		col, row := i%columns, i/columns
		switch c.Kind {
		case liquid.Solid:
			dst = append(dst, Shape{Rect: CellRect(col, row, style.CellSize), Color: style.Solid})
		case liquid.Water:
			var above *liquid.Cell
			if row > 0 {
				above = &cells[i-columns]
			}
			r := WaterRect(col, row, style.CellSize, c.Fill, Continuous(c, above, style.FountainThreshold))
			if !r.Empty() {
				dst = append(dst, Shape{Rect: r, Color: style.Water})
			}
		}
	}
	return dst
}

// GridLines 网格线矩形：每列左边一条竖线，每行上边一条横线
func GridLines(columns, rows, cellSize, lineWidth int) []Rect {
	if lineWidth <= 0 || cellSize <= 0 {
		return nil
	}
	w := float32(columns * cellSize)
	h := float32(rows * cellSize)
	lw := float32(lineWidth)

	lines := make([]Rect, 0, columns+rows)
	for i := 0; i < columns; i++ {
		lines = append(lines, Rect{X: float32(i * cellSize), Y: 0, W: lw, H: h})
	}
	for j := 0; j < rows; j++ {
		lines = append(lines, Rect{X: 0, Y: float32(j * cellSize), W: w, H: lw})
	}
	return lines
}
