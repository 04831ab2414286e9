package gmcrypto

import (
	"github.com/pkg/errors"

	"github.com/paul-lee-attorney/gmcrypto/codec"
	"github.com/paul-lee-attorney/gmcrypto/modes"
	"github.com/paul-lee-attorney/gmcrypto/padding"
)

// Errors returned by this package and its primitives. Compare with errors.Is;
// returned values carry extra context.
var (
	ErrInvalidKeyLength      = errors.New("gmcrypto: sm4 key must decode to 16 bytes")
	ErrInvalidIVLength       = modes.ErrInvalidIVLength
	ErrInvalidBlockAlignment = padding.ErrBlockAlignment
	ErrInvalidPaddingBytes   = padding.ErrInvalidPadding
	ErrInvalidEncoding       = codec.ErrInvalidEncoding

	ErrUnsupportedMode    = modes.ErrUnsupported
	ErrUnsupportedPadding = padding.ErrUnsupported
	ErrUnsupportedDriver  = errors.New("gmcrypto: unsupported driver")
)
