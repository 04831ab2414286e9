// Package padding 实现分组密码的填充方案：PKCS#7、补零和不填充。
package padding

import (
	"bytes"
	"errors"
	"strings"
)

// BlockSize 为SM4分组长度，填充均按16字节对齐。
const BlockSize = 16

var (
	// ErrBlockAlignment 表示数据长度不是分组长度的整数倍。
	ErrBlockAlignment = errors.New("padding: input is not a multiple of the block size")
	// ErrInvalidPadding 表示PKCS#7填充长度越界或填充内容不一致。
	ErrInvalidPadding = errors.New("padding: invalid pkcs7 padding")
	// ErrUnsupported 表示未知的填充方案名称。
	ErrUnsupported = errors.New("padding: unsupported scheme")
)

// Scheme 为填充方案。Pad 总是返回新切片，不修改入参。
type Scheme interface {
	Pad(src []byte) ([]byte, error)
	Unpad(src []byte) ([]byte, error)
	Name() string
}

// 可选的填充方案
var (
	PKCS7 Scheme = pkcs7{}
	Zero  Scheme = zero{}
	None  Scheme = none{}
)

// Parse 按名称（不区分大小写）返回填充方案。
func Parse(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "pkcs7":
		return PKCS7, nil
	case "zero":
		return Zero, nil
	case "none":
		return None, nil
	}
	return nil, ErrUnsupported
}

type pkcs7 struct{}

func (pkcs7) Name() string { return "pkcs7" }

// Pad 按pkcs7规则填充尾部字节，已对齐时补满一个分组。
func (pkcs7) Pad(src []byte) ([]byte, error) {
	n := BlockSize - len(src)%BlockSize
	out := make([]byte, len(src), len(src)+n)
	copy(out, src)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...), nil
}

// Unpad 按pkcs7规则截去尾部填充字节。
func (pkcs7) Unpad(src []byte) ([]byte, error) {
	length := len(src)
	if length%BlockSize != 0 {
		return nil, ErrBlockAlignment
	}
	if length == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(src[length-1])
	if n == 0 || n > BlockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range src[length-n:] {
		if b != byte(n) {
			return nil, ErrInvalidPadding
		}
	}
	return src[:length-n], nil
}

type zero struct{}

func (zero) Name() string { return "zero" }

// Pad 以0x00补齐至分组边界，已对齐（含空输入）时不填充。
func (zero) Pad(src []byte) ([]byte, error) {
	n := 0
	if r := len(src) % BlockSize; r != 0 {
		n = BlockSize - r
	}
	out := make([]byte, len(src)+n)
	copy(out, src)
	return out, nil
}

// Unpad 去除全部尾部0x00。原文本身以0x00结尾时会一并被去除。
func (zero) Unpad(src []byte) ([]byte, error) {
	if len(src)%BlockSize != 0 {
		return nil, ErrBlockAlignment
	}
	return bytes.TrimRight(src, "\x00"), nil
}

type none struct{}

func (none) Name() string { return "none" }

func (none) Pad(src []byte) ([]byte, error) {
	if len(src)%BlockSize != 0 {
		return nil, ErrBlockAlignment
	}
	return append([]byte(nil), src...), nil
}

func (none) Unpad(src []byte) ([]byte, error) {
	if len(src)%BlockSize != 0 {
		return nil, ErrBlockAlignment
	}
	return src, nil
}
