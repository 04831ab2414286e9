package gmcrypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasherStandardVectors(t *testing.T) {
	h := NewHasher(SM3Config{})
	require.Equal(t, "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b", h.Hash(nil))
	require.Equal(t, "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0", h.Hash([]byte("abc")))
	require.Len(t, h.Hash([]byte(strings.Repeat("a", 1000))), 64)
}

func TestHasherDeterministic(t *testing.T) {
	h := NewHasher(SM3Config{})
	require.Equal(t, h.Hash([]byte("test string")), h.Hash([]byte("test string")))
	require.NotEqual(t, h.Hash([]byte("input1")), h.Hash([]byte("input2")))
}

func TestHasherVerify(t *testing.T) {
	h := NewHasher(SM3Config{})
	msg := []byte("verify test")
	sum := h.Hash(msg)

	require.True(t, h.Verify(msg, sum))
	require.True(t, h.Verify(msg, strings.ToUpper(sum)))
	require.False(t, h.Verify(msg, "abc123"))
	require.False(t, h.Verify(msg, ""))
	require.False(t, h.Verify([]byte("tampered"), sum))
}

func TestHasherHMAC(t *testing.T) {
	h := NewHasher(SM3Config{})
	msg := []byte("test message")

	a := h.HMAC(msg, []byte("key1"))
	require.Len(t, a, 64)
	require.Equal(t, a, h.HMAC(msg, []byte("key1")))
	require.NotEqual(t, a, h.HMAC(msg, []byte("key2")))
	require.Len(t, h.HMAC(msg, nil), 64)
	require.Len(t, h.HMAC(msg, []byte(strings.Repeat("k", 100))), 64)
}

func TestHasherHMACMode(t *testing.T) {
	plain := NewHasher(SM3Config{})
	keyed := NewHasher(SM3Config{HMAC: true, HMACKey: "config-key"})
	msg := []byte("message")

	require.Equal(t, plain.HMAC(msg, []byte("config-key")), keyed.Hash(msg))
	require.NotEqual(t, plain.Hash(msg), keyed.Hash(msg))
	require.True(t, keyed.Verify(msg, keyed.Hash(msg)))
	require.False(t, keyed.Verify(msg, plain.Hash(msg)))

	// hmac without a key falls back to the plain digest
	noKey := NewHasher(SM3Config{HMAC: true})
	require.Equal(t, plain.Hash(msg), noKey.Hash(msg))
}
