// Package sm4 为国密SM4算法(分组密码算法)的Go语言实现（推荐性国标编号: GB/T 32907-2016）
// 国家标准在线浏览: http://c.gb688.cn/bzgk/gb/showGb?type=online&hcno=7803DE42D3BC5E80B0C3E5D8E873D56A
// 原创代码: https://github.com/ZZMarquis/gm
// 注释: paul_lee0919@163.com
// 使用许可: Apache License 2.0
package sm4

import (
	"crypto/cipher"
	"encoding/binary"
	"math/bits"
	"strconv"
)

const (
	// BlockSize 代表以“字节”为单位核算的分组长度，折算成“比特”则为128位。
	BlockSize = 16
	// KeySize 代表以“字节”为单位核算的秘钥长度，折算成“比特”则为128位。
	KeySize = 16
	// Rounds 为轮函数迭代次数。
	Rounds = 32
)

// KeySizeError 代表长度不正确的初始秘钥类
type KeySizeError int

// Error 方法返回错误提示信息。
func (k KeySizeError) Error() string {
	return "sm4: invalid key size " + strconv.Itoa(int(k))
}

// RoundKeys 为秘钥扩展算法输出的32个轮秘钥rk[0..31]。
type RoundKeys [Rounds]uint32

// Reverse 返回逆序排列的轮秘钥，解密即以逆序轮秘钥执行同一轮函数。
func (rk RoundKeys) Reverse() RoundKeys {
	var out RoundKeys
	for i := range rk {
		out[Rounds-1-i] = rk[i]
	}
	return out
}

// sm4Cipher 为SM4的分组密码结构体，构造时一次性完成秘钥扩展，此后只读。
type sm4Cipher struct {
	enc RoundKeys
	dec RoundKeys
}

// NewCipher 创设SM4分组密码实例并初始化，返回标准库cipher.Block接口。
func NewCipher(key []byte) (cipher.Block, error) {
	rk, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &sm4Cipher{enc: rk, dec: rk.Reverse()}, nil
}

// BlockSize 返回SM4算法的分组长度。
func (c *sm4Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt 加密src的首个分组写入dst。
func (c *sm4Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}
	cryptBlock(&c.enc, dst, src)
}

// Decrypt 解密src的首个分组写入dst。
func (c *sm4Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}
	cryptBlock(&c.dec, dst, src)
}

// ExpandKey 为SM4国标(7.3)定义的秘钥扩展算法函数。
// (1) 将加密秘钥拆分成MK[i]并与系统参数FK[i]异或，得到K[0..3];
// (2) K[i+4] = K[i] ^ T'(K[i+1] ^ K[i+2] ^ K[i+3] ^ CK[i]);
// (3) 轮秘钥rk[i] = K[i+4], (i=0, 1, ... 31)。
func ExpandKey(key []byte) (RoundKeys, error) {
	var rk RoundKeys
	if len(key) != KeySize {
		return rk, KeySizeError(len(key))
	}

	var k [4]uint32
	for i := range k {
		k[i] = binary.BigEndian.Uint32(key[i*4:]) ^ fK[i]
	}

	for i := 0; i < Rounds; i++ {
		next := k[0] ^ tPrime(k[1]^k[2]^k[3]^cK[i])
		rk[i] = next
		k[0], k[1], k[2], k[3] = k[1], k[2], k[3], next
	}
	return rk, nil
}

// cryptBlock 为SM4核心算法函数:
// (1) 将输入分组按大端序拆为4个“字”X[0..3];
// (2) 按国标7.1(a)进行32轮迭代 X[i+4] = X[i] ^ T(X[i+1] ^ X[i+2] ^ X[i+3] ^ rk[i]);
// (3) 按国标7.1(b)反序变换，输出(X[35], X[34], X[33], X[32])。
func cryptBlock(rk *RoundKeys, dst, src []byte) {
	x0 := binary.BigEndian.Uint32(src[0:4])
	x1 := binary.BigEndian.Uint32(src[4:8])
	x2 := binary.BigEndian.Uint32(src[8:12])
	x3 := binary.BigEndian.Uint32(src[12:16])

	for i := 0; i < Rounds; i++ {
		x0, x1, x2, x3 = x1, x2, x3, x0^t(x1^x2^x3^rk[i])
	}

	binary.BigEndian.PutUint32(dst[0:4], x3)
	binary.BigEndian.PutUint32(dst[4:8], x2)
	binary.BigEndian.PutUint32(dst[8:12], x1)
	binary.BigEndian.PutUint32(dst[12:16], x0)
}

// tau 为国标6.2(a)规定的非线性变换τ，对“字”的4个字节分别查S盒。
func tau(a uint32) uint32 {
	return uint32(sBox[a>>24])<<24 |
		uint32(sBox[a>>16&0xff])<<16 |
		uint32(sBox[a>>8&0xff])<<8 |
		uint32(sBox[a&0xff])
}

// l 为加解密使用的线性变换L（国标6.2(b)）。
func l(b uint32) uint32 {
	return b ^ bits.RotateLeft32(b, 2) ^ bits.RotateLeft32(b, 10) ^
		bits.RotateLeft32(b, 18) ^ bits.RotateLeft32(b, 24)
}

// t 为合成置换T = L(τ(.))。
func t(z uint32) uint32 {
	return l(tau(z))
}

// lPrime 为秘钥扩展使用的线性变换L'（国标7.3(a)）。
func lPrime(b uint32) uint32 {
	return b ^ bits.RotateLeft32(b, 13) ^ bits.RotateLeft32(b, 23)
}

// tPrime 为秘钥扩展使用的合成置换T' = L'(τ(.))。
func tPrime(z uint32) uint32 {
	return lPrime(tau(z))
}
