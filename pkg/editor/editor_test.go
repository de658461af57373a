package editor

import (
	"testing"

	"github.com/decker502/liquidsim/pkg/liquid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, cols, rows int) *liquid.Grid {
	t.Helper()
	g, err := liquid.NewGrid(cols, rows)
	require.NoError(t, err)
	return g
}

func cellAt(t *testing.T, g *liquid.Grid, col, row int) liquid.Cell {
	t.Helper()
	c, err := g.Get(col, row)
	require.NoError(t, err)
	return c
}

func TestBrushToggles(t *testing.T) {
	b := NewBrush(liquid.Solid)
	assert.Equal(t, ModePaint, b.Mode)
	assert.Equal(t, "solid", b.Label())

	assert.Equal(t, liquid.Water, b.ToggleKind())
	assert.Equal(t, liquid.Solid, b.ToggleKind())

	assert.Equal(t, ModeErase, b.ToggleMode())
	assert.Equal(t, "erase", b.Label())
	// 擦除模式不影响已选择的类型
	assert.Equal(t, liquid.Solid, b.Kind)
	assert.Equal(t, ModePaint, b.ToggleMode())
}

func TestBrushCell(t *testing.T) {
	tests := []struct {
		name  string
		brush Brush
		want  liquid.Cell
	}{
		{"paint solid", Brush{Kind: liquid.Solid, Mode: ModePaint}, liquid.Cell{Kind: liquid.Solid, Fill: 1}},
		{"paint water", Brush{Kind: liquid.Water, Mode: ModePaint}, liquid.Cell{Kind: liquid.Water, Fill: 1}},
		{"erase with solid selected", Brush{Kind: liquid.Solid, Mode: ModeErase}, liquid.Cell{Kind: liquid.Water, Fill: 0}},
		{"erase with water selected", Brush{Kind: liquid.Water, Mode: ModeErase}, liquid.Cell{Kind: liquid.Water, Fill: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.brush.Cell())
		})
	}
}

func TestPaintOverwritesCell(t *testing.T) {
	g := newGrid(t, 4, 3)
	require.NoError(t, g.Set(1, 1, liquid.Cell{Kind: liquid.Water, Fill: 0.3}))

	water := NewBrush(liquid.Water)
	require.True(t, water.Paint(g, 1, 1))
	c := cellAt(t, g, 1, 1)
	assert.Equal(t, liquid.Water, c.Kind)
	assert.Equal(t, 1.0, c.Fill)
	assert.Equal(t, 1, c.Col)
	assert.Equal(t, 1, c.Row)

	solid := NewBrush(liquid.Solid)
	require.True(t, solid.Paint(g, 1, 1))
	assert.True(t, cellAt(t, g, 1, 1).IsSolid())

	eraser := Brush{Kind: liquid.Solid, Mode: ModeErase}
	require.True(t, eraser.Paint(g, 1, 1))
	c = cellAt(t, g, 1, 1)
	assert.True(t, c.IsWater())
	assert.Equal(t, 0.0, c.Fill)
}

// TestPaintOutOfRangeIgnored 越界坐标被忽略，网格保持不变
func TestPaintOutOfRangeIgnored(t *testing.T) {
	g := newGrid(t, 3, 3)
	before := g.Clone()
	b := NewBrush(liquid.Water)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		assert.False(t, b.Paint(g, p[0], p[1]), "paint at %v", p)
	}
	assert.False(t, b.Paint(nil, 0, 0))
	assert.Equal(t, before.Cells(), g.Cells())
}

func TestPaintAt(t *testing.T) {
	g := newGrid(t, 100, 70)
	b := NewBrush(liquid.Water)

	require.True(t, b.PaintAt(g, 15, 29, 10))
	assert.Equal(t, 1.0, cellAt(t, g, 1, 2).Fill)

	// 窗口外
	assert.False(t, b.PaintAt(g, 1000, 10, 10))
	assert.False(t, b.PaintAt(g, -3, 10, 10))
	// 无效格子尺寸
	assert.False(t, b.PaintAt(g, 5, 5, 0))
}

func TestPaintStroke(t *testing.T) {
	g := newGrid(t, 10, 10)
	b := NewBrush(liquid.Solid)

	// 水平拖动补齐中间格子
	assert.Equal(t, 6, b.PaintStroke(g, 2, 4, 7, 4))
	for col := 2; col <= 7; col++ {
		assert.True(t, cellAt(t, g, col, 4).IsSolid(), "col %d", col)
	}
	assert.True(t, cellAt(t, g, 1, 4).IsWater())
	assert.True(t, cellAt(t, g, 8, 4).IsWater())

	// 对角线
	g.Reset()
	assert.Equal(t, 4, b.PaintStroke(g, 0, 0, 3, 3))
	for i := 0; i <= 3; i++ {
		assert.True(t, cellAt(t, g, i, i).IsSolid())
	}

	// 单点
	g.Reset()
	assert.Equal(t, 1, b.PaintStroke(g, 5, 5, 5, 5))

	// 拖出窗口：只计算界内的格子
	g.Reset()
	assert.Equal(t, 2, b.PaintStroke(g, 8, 0, 12, 0))
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"point", 1, 1, 1, 1, [][2]int{{1, 1}}},
		{"reverse horizontal", 3, 0, 0, 0, [][2]int{{3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{"vertical", 0, 0, 0, 2, [][2]int{{0, 0}, {0, 1}, {0, 2}}},
		{"shallow", 0, 0, 4, 2, [][2]int{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, line(tt.x0, tt.y0, tt.x1, tt.y1))
		})
	}
}

func TestClear(t *testing.T) {
	g := newGrid(t, 2, 2)
	NewBrush(liquid.Solid).Paint(g, 0, 0)
	NewBrush(liquid.Water).Paint(g, 1, 1)

	Clear(g)
	assert.Equal(t, 0.0, liquid.TotalFill(g))
	assert.True(t, cellAt(t, g, 0, 0).IsWater())
	Clear(nil)
}
