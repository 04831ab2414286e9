package gmcrypto

import (
	"crypto/subtle"
	"strings"

	"go.uber.org/zap"

	"github.com/paul-lee-attorney/gmcrypto/codec"
	"github.com/paul-lee-attorney/gmcrypto/sm3"
)

// Hasher computes SM3 digests and HMAC-SM3 values. It is immutable and safe
// for concurrent use.
type Hasher struct {
	hmacKey []byte
}

// NewHasher builds a Hasher from cfg.
func NewHasher(cfg SM3Config, opts ...Option) *Hasher {
	o := buildOptions(opts)
	h := &Hasher{}
	if cfg.HMAC && cfg.HMACKey != "" {
		h.hmacKey = []byte(cfg.HMACKey)
	}
	o.logger.Debug("sm3 hasher ready", zap.Bool("hmac", h.hmacKey != nil))
	return h
}

// Kind reports KindSM3.
func (h *Hasher) Kind() Kind { return KindSM3 }

// Sum returns the raw 32-byte result of Hash.
func (h *Hasher) Sum(message []byte) [sm3.Size]byte {
	if h.hmacKey != nil {
		return sm3.HMAC(h.hmacKey, message)
	}
	return sm3.Sum(message)
}

// Hash returns the SM3 digest of message as 64 lower-case hex characters, or
// the HMAC-SM3 under the configured key when HMAC mode is on.
func (h *Hasher) Hash(message []byte) string {
	sum := h.Sum(message)
	return codec.EncodeHex(sum[:])
}

// HMAC returns HMAC-SM3 of message under key as lower-case hex.
func (h *Hasher) HMAC(message, key []byte) string {
	mac := sm3.HMAC(key, message)
	return codec.EncodeHex(mac[:])
}

// Verify reports whether candidate is the hex form of Hash(message). The
// comparison ignores case.
func (h *Hasher) Verify(message []byte, candidate string) bool {
	want := h.Hash(message)
	got := strings.ToLower(candidate)
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}
