package liquid

import "gonum.org/v1/gonum/floats"

// Measurement 网格统计快照
type Measurement struct {
	TotalFill  float64 // 所有水格子的填充量之和
	MaxFill    float64
	MinFill    float64
	WaterCells int
	SolidCells int
}

// Measure 统计网格中水格子的填充量
//
// 固体格子的填充量不计入。
func Measure(g *Grid) Measurement {
	fills := g.Fills()
	m := Measurement{
		WaterCells: len(fills),
		SolidCells: g.Len() - len(fills),
	}
	if len(fills) == 0 {
		return m
	}
	m.TotalFill = floats.Sum(fills)
	m.MaxFill = floats.Max(fills)
	m.MinFill = floats.Min(fills)
	return m
}

// TotalFill 返回所有水格子的填充量之和
func TotalFill(g *Grid) float64 {
	return floats.Sum(g.Fills())
}
