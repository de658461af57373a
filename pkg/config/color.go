package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor 以 "#RRGGBB" 或 "#RRGGBBAA" 书写的颜色
type HexColor struct {
	color.NRGBA
}

// ParseHexColor 解析十六进制颜色字符串
//
// 支持格式：
//   - "#RRGGBB"（不透明）
//   - "#RRGGBBAA"
//   - 可省略前缀 "#"
func ParseHexColor(s string) (HexColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return HexColor{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return HexColor{color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}}, nil
}

// MustHexColor 解析颜色，失败时 panic（仅用于默认值常量）
func MustHexColor(s string) HexColor {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String 返回 "#RRGGBB" 或 "#RRGGBBAA"
func (c HexColor) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a string", value.Line)
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
