// Package codec renders binary digests and ciphertexts as lower-case hex or
// standard base64, and parses them back strictly.
package codec

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
)

// ErrInvalidEncoding is returned for malformed hex or base64 input.
var ErrInvalidEncoding = errors.New("codec: invalid encoding")

var b64 = base64.StdEncoding.Strict()

// EncodeHex returns the lower-case hex form of src, two characters per byte.
func EncodeHex(src []byte) string {
	return hex.EncodeToString(src)
}

// DecodeHex accepts upper- or lower-case digits; odd length or any non-hex
// character is an error.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEncoding, "hex: %v", err)
	}
	return b, nil
}

// EncodeBase64 encodes src with the standard alphabet and '=' padding.
func EncodeBase64(src []byte) string {
	return b64.EncodeToString(src)
}

// DecodeBase64 rejects characters outside the standard alphabet, missing or
// misplaced padding and non-zero trailing bits.
func DecodeBase64(s string) ([]byte, error) {
	b, err := b64.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEncoding, "base64: %v", err)
	}
	return b, nil
}
