package sm3

import "hash"

const (
	ipad = 0x36
	opad = 0x5c
)

// hmacDigest 为基于SM3的HMAC（GB/T 15852.2 / RFC 2104 结构）。
type hmacDigest struct {
	ipad  [BlockSize]byte
	opad  [BlockSize]byte
	inner hash.Hash
	outer hash.Hash
}

// normalizeKey 将任意长度的秘钥规整为64字节：
// 长于分组长度的秘钥先做SM3杂凑，其余情况尾部补“0”。
func normalizeKey(key []byte) [BlockSize]byte {
	var k [BlockSize]byte
	if len(key) > BlockSize {
		s := Sum(key)
		copy(k[:], s[:])
	} else {
		copy(k[:], key)
	}
	return k
}

// NewHMAC 返回以key为秘钥的HMAC-SM3摘要实例，实现hash.Hash接口。
func NewHMAC(key []byte) hash.Hash {
	k := normalizeKey(key)
	h := &hmacDigest{inner: New(), outer: New()}
	for i := range k {
		h.ipad[i] = k[i] ^ ipad
		h.opad[i] = k[i] ^ opad
	}
	h.inner.Write(h.ipad[:])
	return h
}

func (h *hmacDigest) Write(p []byte) (int, error) { return h.inner.Write(p) }

func (h *hmacDigest) Size() int { return Size }

func (h *hmacDigest) BlockSize() int { return BlockSize }

// Sum 计算 SM3(k^opad ‖ SM3(k^ipad ‖ m)) 并追加到in之后。
func (h *hmacDigest) Sum(in []byte) []byte {
	origLen := len(in)
	in = h.inner.Sum(in)
	h.outer.Reset()
	h.outer.Write(h.opad[:])
	h.outer.Write(in[origLen:])
	return h.outer.Sum(in[:origLen])
}

func (h *hmacDigest) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipad[:])
}

// HMAC 一步计算message在秘钥key下的HMAC-SM3值。
func HMAC(key, message []byte) [Size]byte {
	h := NewHMAC(key)
	h.Write(message)
	var out [Size]byte
	h.Sum(out[:0])
	return out
}
