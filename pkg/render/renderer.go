package render

import (
	"github.com/decker502/liquidsim/pkg/liquid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer 把网格绘制到 ebiten 图像
// 内部缓冲在帧之间复用，不是并发安全的
type Renderer struct {
	style  Style
	cells  []liquid.Cell
	shapes []Shape
	lines  []Rect
	// 网格线只依赖尺寸，尺寸变化时重新计算
	linesCols, linesRows int
}

// NewRenderer 创建渲染器
func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

// Style 返回渲染样式
func (r *Renderer) Style() Style {
	return r.style
}

// Draw 绘制背景、格子和（可选的）网格线
func (r *Renderer) Draw(screen *ebiten.Image, g *liquid.Grid, showLines bool) {
	screen.Fill(r.style.Background)
	if g == nil {
		return
	}

	r.cells = g.AppendCells(r.cells[:0])
	r.shapes = AppendCellShapes(r.shapes[:0], r.cells, g.Columns(), r.style)
	for _, s := range r.shapes {
		vector.DrawFilledRect(screen, s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, s.Color, false)
	}

	if showLines {
		if r.lines == nil || r.linesCols != g.Columns() || r.linesRows != g.Rows() {
			r.lines = GridLines(g.Columns(), g.Rows(), r.style.CellSize, r.style.LineWidth)
			r.linesCols, r.linesRows = g.Columns(), g.Rows()
		}
		for _, l := range r.lines {
			vector.DrawFilledRect(screen, l.X, l.Y, l.W, l.H, r.style.GridLine, false)
		}
	}
}
