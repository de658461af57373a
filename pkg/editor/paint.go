package editor

import (
	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/liquid"
)

// Paint 在 (col, row) 写入画笔格子
// 越界时不修改网格，返回 false
func (b Brush) Paint(g *liquid.Grid, col, row int) bool {
	if g == nil || !g.InBounds(col, row) {
		return false
	}
	// InBounds 已检查，Set 不会失败
	_ = g.Set(col, row, b.Cell())
	return true
}

// PaintAt 把像素坐标换算为格子坐标后写入
func (b Brush) PaintAt(g *liquid.Grid, x, y, cellSize int) bool {
	if cellSize <= 0 {
		return false
	}
	col, row := config.PixelToCell(x, y, cellSize)
	return b.Paint(g, col, row)
}

// PaintStroke 沿 (fromCol, fromRow) 到 (toCol, toRow) 的直线写入所有格子
//
// 每帧只采样一次指针位置，快速拖动时两次采样之间可能相隔多个格子，
// 按 Bresenham 直线补齐中间的格子。返回实际写入（未越界）的格子数。
func (b Brush) PaintStroke(g *liquid.Grid, fromCol, fromRow, toCol, toRow int) int {
	painted := 0
	for _, p := range line(fromCol, fromRow, toCol, toRow) {
		if b.Paint(g, p[0], p[1]) {
			painted++
		}
	}
	return painted
}

// Clear 把所有格子重置为空水格
func Clear(g *liquid.Grid) {
	if g != nil {
		g.Reset()
	}
}

// line 返回两个格子之间的 Bresenham 直线（包含两个端点）
func line(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([][2]int, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		points = append(points, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
