package liquid

import "math"

// FlowDown 重力下落遍历
//
// 对每个非最底行的水格子，若正下方是未满的水格子，则转移
// min(TransferSpeed, 当前填充量, 1-下方填充量)。
// 下方为固体、已满，或当前格子为空时不转移。
//
// 每列中的 (当前, 下方) 对只在 dst 上累加，读取全部来自 src，
// 因此遍历顺序不影响结果。
func FlowDown(src, dst *Grid, p Params) (float64, error) {
	if err := prepare(PassFlowDown, src, dst); err != nil {
		return 0, err
	}

	var moved float64
	for row := 0; row < src.rows-1; row++ {
		for col := 0; col < src.columns; col++ {
			current := src.at(col, row)
			below := src.at(col, row+1)

			if current.Kind != Water || current.Fill <= 0 {
				continue
			}
			if below.Kind != Water || below.Fill >= 1 {
				continue
			}

			amount := math.Min(p.TransferSpeed, math.Min(current.Fill, 1-below.Fill))
			n, err := move(dst, PassFlowDown, col, row, col, row+1, amount, p)
			if err != nil {
				return moved, err
			}
			moved += n
		}
	}
	return moved, nil
}
