package sm3

import (
	"encoding/binary"
	"math/bits"
)

// gT 为常量T(j)循环左移(j mod 32)位的结果数组（详见国标5.3.3获取中间变量SS1的算法），其中:
// (1) (0 <= j <= 15)时, T(j) = 0x79CC4519
// (2) (16 <= j <= 63)时, T(j) = 0x7A879D8A
var gT = [64]uint32{
	0x79CC4519, 0xF3988A32, 0xE7311465, 0xCE6228CB, 0x9CC45197, 0x3988A32F, 0x7311465E, 0xE6228CBC,
	0xCC451979, 0x988A32F3, 0x311465E7, 0x6228CBCE, 0xC451979C, 0x88A32F39, 0x11465E73, 0x228CBCE6,
	0x9D8A7A87, 0x3B14F50F, 0x7629EA1E, 0xEC53D43C, 0xD8A7A879, 0xB14F50F3, 0x629EA1E7, 0xC53D43CE,
	0x8A7A879D, 0x14F50F3B, 0x29EA1E76, 0x53D43CEC, 0xA7A879D8, 0x4F50F3B1, 0x9EA1E762, 0x3D43CEC5,
	0x7A879D8A, 0xF50F3B14, 0xEA1E7629, 0xD43CEC53, 0xA879D8A7, 0x50F3B14F, 0xA1E7629E, 0x43CEC53D,
	0x879D8A7A, 0x0F3B14F5, 0x1E7629EA, 0x3CEC53D4, 0x79D8A7A8, 0xF3B14F50, 0xE7629EA1, 0xCEC53D43,
	0x9D8A7A87, 0x3B14F50F, 0x7629EA1E, 0xEC53D43C, 0xD8A7A879, 0xB14F50F3, 0x629EA1E7, 0xC53D43CE,
	0x8A7A879D, 0x14F50F3B, 0x29EA1E76, 0x53D43CEC, 0xA7A879D8, 0x4F50F3B1, 0x9EA1E762, 0x3D43CEC5}

// block 为SM3的压缩函数CF，对p中每个完整的64字节分组依次处理：
// (1) 按国标5.3.2(a)将分组拆为16个大端“字”W[0..15];
// (2) 按国标5.3.2(b)扩展出W[16..67];
// (3) 按国标5.3.2(c)求W'[0..63] = W[j] ^ W[j+4];
// (4) 按国标5.3.3进行64轮迭代压缩，结果与v异或后写回。
func block(v *[Size / 4]uint32, p []byte) {
	var w [68]uint32
	var w1 [64]uint32

	h0, h1, h2, h3, h4, h5, h6, h7 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]

	for len(p) >= BlockSize {
		for j := 0; j < 16; j++ {
			w[j] = binary.BigEndian.Uint32(p[j*4:])
		}
		for j := 16; j < 68; j++ {
			w[j] = p1(w[j-16]^w[j-9]^bits.RotateLeft32(w[j-3], 15)) ^ bits.RotateLeft32(w[j-13], 7) ^ w[j-6]
		}
		for j := 0; j < 64; j++ {
			w1[j] = w[j] ^ w[j+4]
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for j := 0; j < 64; j++ {
			a12 := bits.RotateLeft32(a, 12)
			ss1 := bits.RotateLeft32(a12+e+gT[j], 7)
			ss2 := ss1 ^ a12
			var tt1, tt2 uint32
			if j < 16 {
				tt1 = ff0(a, b, c) + d + ss2 + w1[j]
				tt2 = gg0(e, f, g) + h + ss1 + w[j]
			} else {
				tt1 = ff1(a, b, c) + d + ss2 + w1[j]
				tt2 = gg1(e, f, g) + h + ss1 + w[j]
			}
			d = c
			c = bits.RotateLeft32(b, 9)
			b = a
			a = tt1
			h = g
			g = bits.RotateLeft32(f, 19)
			f = e
			e = p0(tt2)
		}

		h0 ^= a
		h1 ^= b
		h2 ^= c
		h3 ^= d
		h4 ^= e
		h5 ^= f
		h6 ^= g
		h7 ^= h

		p = p[BlockSize:]
	}

	v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7] = h0, h1, h2, h3, h4, h5, h6, h7
}

// p0 为国标4.4条规定的置换函数P0。
func p0(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17)
}

// p1 为国标4.4条规定的置换函数P1。
func p1(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23)
}

// ff0 为(0 <= j <= 15)时的布尔函数FF(j)。
func ff0(x, y, z uint32) uint32 { return x ^ y ^ z }

// ff1 为(16 <= j <= 63)时的布尔函数FF(j)。
func ff1(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }

// gg0 为(0 <= j <= 15)时的布尔函数GG(j)。
func gg0(x, y, z uint32) uint32 { return x ^ y ^ z }

// gg1 为(16 <= j <= 63)时的布尔函数GG(j)。
func gg1(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
