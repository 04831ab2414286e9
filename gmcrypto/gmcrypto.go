// Package gmcrypto builds SM3 and SM4 handles from a configuration record.
//
// A Config value goes straight into a constructor; there is no registry or
// global state. New picks the handle from Config.Driver, while NewHasher and
// NewCipher build one kind directly:
//
//	c, err := gmcrypto.NewCipher(gmcrypto.SM4Config{
//		Key:  "0123456789abcdeffedcba9876543210",
//		Mode: "CBC",
//		IV:   "fedcba98765432100123456789abcdef",
//	})
//	ct, err := c.EncryptBase64([]byte("secret"))
//
// Zero padding cannot tell padding from genuine trailing 0x00 bytes; use
// pkcs7 (the default) for binary data.
package gmcrypto

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies the capability of a Driver.
type Kind int

const (
	KindSM3 Kind = iota + 1
	KindSM4
)

func (k Kind) String() string {
	switch k {
	case KindSM3:
		return DriverSM3
	case KindSM4:
		return DriverSM4
	}
	return "unknown"
}

// Driver is implemented by *Hasher and *Cipher. Callers switch on the
// concrete type, or on Kind, to reach the operations.
type Driver interface {
	Kind() Kind
}

// New builds the handle named by cfg.Driver (sm4 when empty).
func New(cfg Config, opts ...Option) (Driver, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverSM4:
		c, err := NewCipher(cfg.SM4, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case DriverSM3:
		return NewHasher(cfg.SM3, opts...), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedDriver, "%q", cfg.Driver)
}
