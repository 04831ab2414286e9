// Package sm3 为国密SM3密码杂凑算法的Go语言实现（推荐性国标编号: GB/T 32905-2016）
// 原创代码: https://github.com/ZZMarquis/gm
// 注释: paul_lee0919@163.com
// 所适用的软件使用许可: Apache License 2.0
package sm3

import (
	"encoding/binary"
	"hash"
)

const (
	// Size 代表SM3哈希摘要以“字节”为计量单位核算的长度。
	Size = 32
	// BlockSize 代表迭代压缩前，输入消息分组时，长度相等的分组数据块以“字节”为计量单位核算的长度。
	BlockSize = 64
)

// 国标4.1条规定的初始值IV。
const (
	iv0 = 0x7380166F
	iv1 = 0x4914B2B9
	iv2 = 0x172442D7
	iv3 = 0xDA8A0600
	iv4 = 0xA96F30BC
	iv5 = 0x163138AA
	iv6 = 0xE38DEE4D
	iv7 = 0xB0FB0E4E
)

// digest 为SM3算法哈希摘要类，属于私有类，仅SM3包内可以调用。
type digest struct {
	v   [Size / 4]uint32 // v[8] 为8个“字”寄存器，存储迭代压缩的中间结果或最终哈希值。
	buf [BlockSize]byte  // buf 暂存尚不足一个分组（64字节）的输入消息。
	n   int              // n 为buf中已写入的字节数。
	len uint64           // len 为已写入消息以“字节”为单位的总长度。
}

// New 创建digest的实例，并根据国标（GB/T 32905-2016）规定的初始值（IV）初始化寄存器保存的值。
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// Reset 为初始化或重置哈希摘要的方法。
func (d *digest) Reset() {
	d.v = [Size / 4]uint32{iv0, iv1, iv2, iv3, iv4, iv5, iv6, iv7}
	d.n = 0
	d.len = 0
}

// Size 方法返回SM3哈希摘要以字节为计量单位核算的长度。
func (d *digest) Size() int { return Size }

// BlockSize 返回消息分组以“字节”为单位核算的长度，与GO语言标准包SHA256的口径保持一致。
func (d *digest) BlockSize() int { return BlockSize }

// Write 为哈希摘要的“写”方法，可多次、持续调用。
// 凑满一个分组即调用block()进行迭代压缩，“填充”步骤推迟到checkSum()中完成。
// 写入空消息是合法的，不会改变摘要状态。
func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.n > 0 {
		c := copy(d.buf[d.n:], p)
		d.n += c
		if d.n == BlockSize {
			block(&d.v, d.buf[:])
			d.n = 0
		}
		p = p[c:]
	}
	if len(p) >= BlockSize {
		c := len(p) &^ (BlockSize - 1)
		block(&d.v, p[:c])
		p = p[c:]
	}
	if len(p) > 0 {
		d.n = copy(d.buf[:], p)
	}
	return
}

// Sum 将当前哈希值追加到b之后返回。
// 对摘要的副本进行收尾运算，因此调用Sum之后仍可继续写入消息。
func (d *digest) Sum(b []byte) []byte {
	d0 := *d
	h := d0.checkSum()
	return append(b, h[:]...)
}

// checkSum 为SM3的收尾方法:
// (1) 在消息末尾填充比特“1”（即字节0x80）;
// (2) 填充“0”字节，直至消息长度对64取模等于56;
// (3) 以64位大端整数追加消息的比特长度，并完成最后的迭代压缩;
// (4) 以32位“字”为单位，按大端序输出8个寄存器。
func (d *digest) checkSum() [Size]byte {
	length := d.len
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	var t uint64
	if length%BlockSize < 56 {
		t = 56 - length%BlockSize
	} else {
		t = BlockSize + 56 - length%BlockSize
	}
	binary.BigEndian.PutUint64(tmp[t:], length<<3)
	d.Write(tmp[:t+8])

	if d.n != 0 {
		panic("sm3: d.n != 0")
	}

	var out [Size]byte
	for i, v := range d.v {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Sum 为SM3一步生成输入消息data[]哈希值的函数，属公共函数，可直接在包外调用。
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
