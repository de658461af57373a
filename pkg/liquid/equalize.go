package liquid

// Equalize 水平均衡遍历
//
// 只有“垂直方向已经稳定”的水格子才向两侧扩散，即满足以下任一条件：
//   - 位于最底行
//   - 下方是固体
//   - 下方填充量 >= 当前填充量
//
// 对左右两侧填充量严格更低的水邻居，各转移 (当前-邻居)/HorizontalDamping。
// 左右两侧都基于 src 中未减少的当前填充量独立计算。
func Equalize(src, dst *Grid, p Params) (float64, error) {
	if err := prepare(PassEqualize, src, dst); err != nil {
		return 0, err
	}

	var moved float64
	for row := 0; row < src.rows; row++ {
		for col := 0; col < src.columns; col++ {
			current := src.at(col, row)
			if current.Kind != Water {
				continue
			}
			if !settledAbove(src, current, col, row) {
				continue
			}

			// 左、右
			for _, nc := range [2]int{col - 1, col + 1} {
				if nc < 0 || nc >= src.columns {
					continue
				}
				neighbor := src.at(nc, row)
				if neighbor.Kind != Water || neighbor.Fill >= current.Fill {
					continue
				}
				amount := (current.Fill - neighbor.Fill) / p.HorizontalDamping
				n, err := move(dst, PassEqualize, col, row, nc, row, amount, p)
				if err != nil {
					return moved, err
				}
				moved += n
			}
		}
	}
	return moved, nil
}

// settledAbove 判断水是否已停止穿过当前格子继续下落
func settledAbove(src *Grid, current *Cell, col, row int) bool {
	if row == src.rows-1 {
		return true
	}
	below := src.at(col, row+1)
	if below.Kind == Solid {
		return true
	}
	return below.Fill >= current.Fill
}
