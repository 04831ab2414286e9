package gmcrypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfig = `{
	"default": "sm4",
	"sm4": {
		"key": "0123456789abcdeffedcba9876543210",
		"mode": "CBC",
		"iv": "fedcba98765432100123456789abcdef",
		"padding": "pkcs7"
	},
	"sm3": {"hmac": false, "hmac_key": ""}
}`

func TestNewFromDecodedConfig(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(testConfig), &cfg))

	d, err := New(cfg)
	require.NoError(t, err)
	require.Equal(t, KindSM4, d.Kind())

	c, ok := d.(*Cipher)
	require.True(t, ok)
	ct, err := c.EncryptString("13800138000")
	require.NoError(t, err)
	pt, err := c.DecryptString(ct)
	require.NoError(t, err)
	require.Equal(t, "13800138000", pt)

	cfg.Driver = "SM3"
	d, err = New(cfg)
	require.NoError(t, err)
	require.Equal(t, KindSM3, d.Kind())
	require.Equal(t, "sm3", d.Kind().String())
	h := d.(*Hasher)
	require.True(t, h.Verify([]byte("abc"), "66C7F0F462EEEDD9D1F2D46BDC10E4E24167C4875CF2F7A2297DA02B8F4BA8E0"))
}

func TestNewDefaultsToSM4(t *testing.T) {
	d, err := New(Config{SM4: SM4Config{Key: testKey}})
	require.NoError(t, err)
	require.Equal(t, KindSM4, d.Kind())
}

func TestNewErrors(t *testing.T) {
	d, err := New(Config{Driver: "sm2"})
	require.Nil(t, d)
	require.ErrorIs(t, err, ErrUnsupportedDriver)

	d, err = New(Config{Driver: "sm4"})
	require.Nil(t, d)
	require.ErrorIs(t, err, ErrInvalidKeyLength)
}
