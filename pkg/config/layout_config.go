package config

// 布局配置常量
// 本文件定义了窗口与网格的默认尺寸

const (
	// DefaultWindowWidth 默认窗口宽度（像素）
	DefaultWindowWidth = 1000

	// DefaultWindowHeight 默认窗口高度（像素）
	DefaultWindowHeight = 700

	// DefaultWindowTitle 默认窗口标题
	DefaultWindowTitle = "Liquid Simulation"

	// DefaultTPS ebiten 每秒更新次数
	// 模拟步骤由 TickInterval 单独控制，TPS 只影响输入响应和渲染
	DefaultTPS = 60

	// DefaultCellSize 每个格子的边长（像素）
	DefaultCellSize = 10

	// DefaultLineWidth 网格线宽度（像素）
	DefaultLineWidth = 2

	// DefaultColumns 默认列数 = 1000 / 10
	DefaultColumns = DefaultWindowWidth / DefaultCellSize

	// DefaultRows 默认行数 = 700 / 10
	DefaultRows = DefaultWindowHeight / DefaultCellSize

	// DefaultFountainThreshold 连续水柱渲染阈值
	// 上方格子和当前格子的填充量都超过此值时，当前格子画满
	DefaultFountainThreshold = 0.015
)

// PixelToCell 将像素坐标转换为格子坐标
//
// 结果可能越界（例如鼠标在窗口外），调用方需要自行检查。
// 负坐标向下取整，避免 -0.5 被截断为格子 0。
func PixelToCell(x, y, cellSize int) (col, row int) {
	if cellSize <= 0 {
		return -1, -1
	}
	return floorDiv(x, cellSize), floorDiv(y, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}
