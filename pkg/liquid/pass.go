package liquid

import "fmt"

// 遍历名称，用于错误信息和统计
const (
	PassFlowDown = "flow-down"
	PassEqualize = "equalize"
	PassPressure = "pressure"
)

// Pass 单次网格遍历
//
// 从 src 读取、向 dst 写入，返回本次遍历转移的总量。
// 调用结束后 dst 持有遍历结果，src 保持不变。
type Pass func(src, dst *Grid, p Params) (float64, error)

// prepare 校验读写缓冲区并把 src 复制到 dst
func prepare(pass string, src, dst *Grid) error {
	if src == nil || dst == nil {
		return fmt.Errorf("%s: %w: nil grid", pass, ErrDimensionMismatch)
	}
	if src == dst {
		return fmt.Errorf("%s: %w", pass, ErrSharedBuffer)
	}
	if err := dst.CopyFrom(src); err != nil {
		return fmt.Errorf("%s: %w", pass, err)
	}
	return nil
}

// move 在 dst 中把 amount 从 (fc, fr) 转移到 (tc, tr)
//
// amount 为负数或 NaN 时：CheckTransfers 打开则返回 *TransferError，否则跳过。
func move(dst *Grid, pass string, fc, fr, tc, tr int, amount float64, p Params) (float64, error) {
	if !(amount >= 0) {
		if p.CheckTransfers {
			return 0, &TransferError{
				Pass:   pass,
				From:   [2]int{fc, fr},
				To:     [2]int{tc, tr},
				Amount: amount,
			}
		}
		return 0, nil
	}
	dst.at(fc, fr).Fill -= amount
	dst.at(tc, tr).Fill += amount
	return amount, nil
}
