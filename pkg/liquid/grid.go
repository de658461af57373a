package liquid

import "fmt"

// Grid 固定尺寸的二维格子网格
//
// 所有格子存放在一块连续的切片中，按 row*columns+col 寻址。
// 网格创建时所有格子均为填充量为 0 的水格子。
type Grid struct {
	columns int
	rows    int
	cells   []Cell
}

// NewGrid 创建 columns x rows 的网格
//
// 参数:
//   - columns: 列数，必须大于 0
//   - rows: 行数，必须大于 0
//
// 返回:
//   - *Grid: 所有格子为空水格子的网格
//   - error: 尺寸无效时返回错误
func NewGrid(columns, rows int) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("liquid: invalid grid size %dx%d", columns, rows)
	}
	g := &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows),
	}
	g.Reset()
	return g, nil
}

// Columns 返回列数
func (g *Grid) Columns() int { return g.columns }

// Rows 返回行数
func (g *Grid) Rows() int { return g.rows }

// Len 返回格子总数
func (g *Grid) Len() int { return len(g.cells) }

// InBounds 检查坐标是否在网格范围内
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.columns && row >= 0 && row < g.rows
}

func (g *Grid) index(col, row int) int {
	return row*g.columns + col
}

func (g *Grid) boundsError(col, row int) error {
	return &IndexError{Col: col, Row: row, Columns: g.columns, Rows: g.rows}
}

// Get 读取指定坐标的格子
//
// 越界时返回包装了 ErrIndexOutOfRange 的 *IndexError。
func (g *Grid) Get(col, row int) (Cell, error) {
	if !g.InBounds(col, row) {
		return Cell{}, g.boundsError(col, row)
	}
	return g.cells[g.index(col, row)], nil
}

// Set 覆盖写入指定坐标的格子
//
// 写入时 cell 的 Col/Row 会被规范化为实际坐标。
// 越界时返回包装了 ErrIndexOutOfRange 的 *IndexError，网格不变。
func (g *Grid) Set(col, row int, cell Cell) error {
	if !g.InBounds(col, row) {
		return g.boundsError(col, row)
	}
	cell.Col, cell.Row = col, row
	g.cells[g.index(col, row)] = cell
	return nil
}

// at 返回格子指针，调用方负责保证坐标有效
func (g *Grid) at(col, row int) *Cell {
	return &g.cells[g.index(col, row)]
}

// Each 按行优先顺序遍历所有格子
func (g *Grid) Each(fn func(c Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Cells 返回所有格子的副本（行优先）
func (g *Grid) Cells() []Cell {
	return g.AppendCells(nil)
}

// AppendCells 把所有格子追加到 dst 并返回，渲染时复用 dst[:0] 避免每帧分配
func (g *Grid) AppendCells(dst []Cell) []Cell {
	return append(dst, g.cells...)
}

// Fills 返回所有水格子的填充量（行优先，跳过固体格子）
func (g *Grid) Fills() []float64 {
	out := make([]float64, 0, len(g.cells))
	for _, c := range g.cells {
		if c.Kind == Water {
			out = append(out, c.Fill)
		}
	}
	return out
}

// Reset 将所有格子恢复为空水格子
func (g *Grid) Reset() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.columns; col++ {
			g.cells[g.index(col, row)] = Cell{Kind: Water, Col: col, Row: row}
		}
	}
}

// Clone 返回网格的深拷贝
func (g *Grid) Clone() *Grid {
	c := &Grid{
		columns: g.columns,
		rows:    g.rows,
		cells:   make([]Cell, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// SameShape 检查两个网格尺寸是否一致
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.columns == other.columns && g.rows == other.rows
}

// CopyFrom 用 src 的内容覆盖当前网格
func (g *Grid) CopyFrom(src *Grid) error {
	if src == nil {
		return fmt.Errorf("%w: nil source grid", ErrDimensionMismatch)
	}
	if !g.SameShape(src) {
		return fmt.Errorf("%w: %dx%d <- %dx%d", ErrDimensionMismatch, g.columns, g.rows, src.columns, src.rows)
	}
	copy(g.cells, src.cells)
	return nil
}
