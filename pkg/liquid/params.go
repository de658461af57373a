package liquid

import "fmt"

// 默认模拟参数
const (
	// DefaultTransferSpeed 每帧垂直下落的最大转移量
	DefaultTransferSpeed = 0.2

	// DefaultHorizontalDamping 水平均衡的阻尼除数
	// 每次向邻居转移 (差值 / DefaultHorizontalDamping)
	DefaultHorizontalDamping = 3.0
)

// Params 模拟参数
type Params struct {
	// TransferSpeed 限制每帧从一个格子流向下方格子的最大量
	TransferSpeed float64

	// HorizontalDamping 水平均衡除数，越大均衡越慢，必须 >= 2
	HorizontalDamping float64

	// CheckTransfers 为 true 时，负数转移量作为 ErrInvalidTransfer 返回；
	// 为 false 时跳过该转移
	CheckTransfers bool
}

// DefaultParams 返回默认参数
func DefaultParams() Params {
	return Params{
		TransferSpeed:     DefaultTransferSpeed,
		HorizontalDamping: DefaultHorizontalDamping,
		CheckTransfers:    true,
	}
}

// Validate 验证参数有效性
//
// HorizontalDamping 小于 2 时，一个格子同时向左右两侧转移可能使自身填充量为负。
func (p Params) Validate() error {
	if !(p.TransferSpeed > 0) {
		return fmt.Errorf("transfer speed must be > 0, got %g", p.TransferSpeed)
	}
	if !(p.HorizontalDamping >= 2) {
		return fmt.Errorf("horizontal damping must be >= 2, got %g", p.HorizontalDamping)
	}
	return nil
}
