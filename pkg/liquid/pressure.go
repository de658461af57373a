package liquid

// Pressurize 超压回流遍历
//
// 填充量超过 1 的水格子把超出部分推向上方的水格子：
// 转移量 = (当前-1) - 上方，直到与上方持平。
// 转移量不为正时不转移（上方已经比超出部分更满）。
func Pressurize(src, dst *Grid, p Params) (float64, error) {
	if err := prepare(PassPressure, src, dst); err != nil {
		return 0, err
	}

	var moved float64
	for row := 1; row < src.rows; row++ {
		for col := 0; col < src.columns; col++ {
			current := src.at(col, row)
			above := src.at(col, row-1)

			if current.Kind != Water || current.Fill <= 1 {
				continue
			}
			if above.Kind != Water || current.Fill <= above.Fill {
				continue
			}

			amount := (current.Fill - 1) - above.Fill
			if amount <= 0 {
				continue
			}
			n, err := move(dst, PassPressure, col, row, col, row-1, amount, p)
			if err != nil {
				return moved, err
			}
			moved += n
		}
	}
	return moved, nil
}
