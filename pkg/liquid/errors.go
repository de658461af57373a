package liquid

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange 网格访问越界
	ErrIndexOutOfRange = errors.New("liquid: index out of range")

	// ErrInvalidTransfer 遍历计算出的转移量为负数或 NaN（属于逻辑错误）
	ErrInvalidTransfer = errors.New("liquid: invalid transfer")

	// ErrDimensionMismatch 源缓冲区与目标缓冲区尺寸不一致
	ErrDimensionMismatch = errors.New("liquid: grid dimension mismatch")

	// ErrSharedBuffer 遍历的读缓冲区与写缓冲区是同一个网格
	ErrSharedBuffer = errors.New("liquid: source and destination share a buffer")
)

// IndexError 越界访问的详细信息
type IndexError struct {
	Col, Row      int
	Columns, Rows int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("liquid: cell (%d, %d) out of range (grid %dx%d)", e.Col, e.Row, e.Columns, e.Rows)
}

// Unwrap 使 errors.Is(err, ErrIndexOutOfRange) 成立
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// TransferError 非法转移的详细信息
type TransferError struct {
	Pass     string
	From, To [2]int // (col, row)
	Amount   float64
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("liquid: %s pass computed invalid transfer %g from (%d, %d) to (%d, %d)",
		e.Pass, e.Amount, e.From[0], e.From[1], e.To[0], e.To[1])
}

// Unwrap 使 errors.Is(err, ErrInvalidTransfer) 成立
func (e *TransferError) Unwrap() error {
	return ErrInvalidTransfer
}
