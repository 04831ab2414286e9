// Package modes 将SM4分组密码与分组链接模式（ECB、CBC）及填充方案组合，
// 完成任意长度数据的加解密。
package modes

import (
	"crypto/cipher"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/paul-lee-attorney/gmcrypto/padding"
)

// Mode 为分组链接模式。
type Mode int

const (
	// ECB 电码本模式：相同明文分组在同一秘钥下总是得到相同密文分组。
	ECB Mode = iota
	// CBC 密文分组链接模式：明文分组先与前一密文分组（首组为IV）异或再加密。
	CBC
)

var (
	// ErrInvalidIVLength 表示CBC模式的初始向量长度不等于分组长度。
	ErrInvalidIVLength = errors.New("modes: invalid iv length")
	// ErrUnsupported 表示未知的分组模式。
	ErrUnsupported = errors.New("modes: unsupported mode")
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode 按名称（不区分大小写）解析分组模式。
func ParseMode(name string) (Mode, error) {
	switch strings.ToUpper(name) {
	case "ECB":
		return ECB, nil
	case "CBC":
		return CBC, nil
	}
	return 0, errors.Wrapf(ErrUnsupported, "%q", name)
}

// Processor 组合分组密码、链接模式、初始向量与填充方案。
// 构造后只读；CBC的BlockMode有状态，因此每次调用都新建，可并发使用。
type Processor struct {
	block  cipher.Block
	mode   Mode
	iv     []byte
	scheme padding.Scheme
}

// NewProcessor 校验参数并创建Processor。ECB模式下iv被忽略。
func NewProcessor(b cipher.Block, mode Mode, iv []byte, scheme padding.Scheme) (*Processor, error) {
	if b == nil {
		return nil, errors.New("modes: nil block cipher")
	}
	if scheme == nil {
		scheme = padding.PKCS7
	}
	p := &Processor{block: b, mode: mode, scheme: scheme}
	switch mode {
	case ECB:
	case CBC:
		if len(iv) != b.BlockSize() {
			return nil, errors.Wrapf(ErrInvalidIVLength, "got %d bytes, want %d", len(iv), b.BlockSize())
		}
		p.iv = append([]byte(nil), iv...)
	default:
		return nil, errors.Wrapf(ErrUnsupported, "%v", mode)
	}
	return p, nil
}

// Mode 返回分组模式。
func (p *Processor) Mode() Mode { return p.mode }

// Padding 返回填充方案。
func (p *Processor) Padding() padding.Scheme { return p.scheme }

func (p *Processor) encrypter() cipher.BlockMode {
	if p.mode == CBC {
		return cipher.NewCBCEncrypter(p.block, p.iv)
	}
	return NewECBEncrypter(p.block)
}

func (p *Processor) decrypter() cipher.BlockMode {
	if p.mode == CBC {
		return cipher.NewCBCDecrypter(p.block, p.iv)
	}
	return NewECBDecrypter(p.block)
}

// Encrypt 先填充再按模式链接加密，返回新分配的密文。
func (p *Processor) Encrypt(plaintext []byte) ([]byte, error) {
	buf, err := p.scheme.Pad(plaintext)
	if err != nil {
		return nil, errors.Wrapf(err, "%s/%s encrypt", p.mode, p.scheme.Name())
	}
	p.encrypter().CryptBlocks(buf, buf)
	return buf, nil
}

// Decrypt 按模式链接解密后去除填充。
func (p *Processor) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%p.block.BlockSize() != 0 {
		return nil, errors.Wrapf(padding.ErrBlockAlignment, "%s decrypt: ciphertext length %d", p.mode, len(ciphertext))
	}
	buf := make([]byte, len(ciphertext))
	p.decrypter().CryptBlocks(buf, ciphertext)
	plaintext, err := p.scheme.Unpad(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "%s/%s decrypt", p.mode, p.scheme.Name())
	}
	return plaintext, nil
}
