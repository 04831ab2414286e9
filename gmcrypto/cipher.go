package gmcrypto

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/paul-lee-attorney/gmcrypto/codec"
	"github.com/paul-lee-attorney/gmcrypto/modes"
	"github.com/paul-lee-attorney/gmcrypto/padding"
	"github.com/paul-lee-attorney/gmcrypto/sm4"
)

// Cipher encrypts and decrypts arbitrary-length data with SM4 under a fixed
// key, mode, IV and padding. Round keys are derived once in NewCipher. A
// Cipher is immutable and safe for concurrent use.
type Cipher struct {
	p *modes.Processor
}

// NewCipher validates cfg and builds a Cipher.
func NewCipher(cfg SM4Config, opts ...Option) (*Cipher, error) {
	o := buildOptions(opts)
	cfg = cfg.withDefaults()

	key, err := codec.DecodeHex(cfg.Key)
	if err != nil {
		return nil, errors.Wrap(err, "sm4 key")
	}
	block, err := sm4.NewCipher(key)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "%v", err)
	}

	mode, err := modes.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	scheme, err := padding.Parse(cfg.Padding)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", cfg.Padding)
	}

	var iv []byte
	switch {
	case mode == modes.CBC:
		if iv, err = codec.DecodeHex(cfg.IV); err != nil {
			return nil, errors.Wrap(err, "sm4 iv")
		}
	case cfg.IV != "":
		o.logger.Debug("iv ignored", zap.Stringer("mode", mode))
	}

	p, err := modes.NewProcessor(block, mode, iv, scheme)
	if err != nil {
		return nil, err
	}

	if scheme == padding.Zero {
		o.logger.Warn("zero padding drops trailing 0x00 bytes of the plaintext on decrypt")
	}
	o.logger.Debug("sm4 cipher ready", zap.Stringer("mode", mode), zap.String("padding", scheme.Name()))
	return &Cipher{p: p}, nil
}

// Kind reports KindSM4.
func (c *Cipher) Kind() Kind { return KindSM4 }

// Mode returns the block chaining mode.
func (c *Cipher) Mode() modes.Mode { return c.p.Mode() }

// Padding returns the padding scheme name.
func (c *Cipher) Padding() string { return c.p.Padding().Name() }

// Encrypt pads and encrypts plaintext, returning raw ciphertext.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	return c.p.Encrypt(plaintext)
}

// Decrypt decrypts raw ciphertext and removes the padding.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.p.Decrypt(ciphertext)
}

// EncryptHex is Encrypt with lower-case hex output.
func (c *Cipher) EncryptHex(plaintext []byte) (string, error) {
	ct, err := c.p.Encrypt(plaintext)
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(ct), nil
}

// DecryptHex decodes hex ciphertext and decrypts it.
func (c *Cipher) DecryptHex(ciphertext string) ([]byte, error) {
	ct, err := codec.DecodeHex(ciphertext)
	if err != nil {
		return nil, err
	}
	return c.p.Decrypt(ct)
}

// EncryptBase64 is Encrypt with standard base64 output.
func (c *Cipher) EncryptBase64(plaintext []byte) (string, error) {
	ct, err := c.p.Encrypt(plaintext)
	if err != nil {
		return "", err
	}
	return codec.EncodeBase64(ct), nil
}

// DecryptBase64 decodes base64 ciphertext and decrypts it.
func (c *Cipher) DecryptBase64(ciphertext string) ([]byte, error) {
	ct, err := codec.DecodeBase64(ciphertext)
	if err != nil {
		return nil, err
	}
	return c.p.Decrypt(ct)
}

// EncryptString encrypts a text message to base64, the form used for storing
// encrypted fields.
func (c *Cipher) EncryptString(plaintext string) (string, error) {
	return c.EncryptBase64([]byte(plaintext))
}

// DecryptString reverses EncryptString.
func (c *Cipher) DecryptString(ciphertext string) (string, error) {
	pt, err := c.DecryptBase64(ciphertext)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}
