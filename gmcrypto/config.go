package gmcrypto

import "strings"

// Driver names accepted by Config.Driver.
const (
	DriverSM3 = "sm3"
	DriverSM4 = "sm4"
)

// Config is the declarative record an external loader produces. Driver picks
// which handle New builds; it defaults to sm4.
type Config struct {
	Driver string    `json:"default"`
	SM3    SM3Config `json:"sm3"`
	SM4    SM4Config `json:"sm4"`
}

// SM3Config configures a Hasher. With HMAC set and a non-empty HMACKey, Hash
// computes HMAC-SM3 under HMACKey instead of a plain digest.
type SM3Config struct {
	HMAC    bool   `json:"hmac"`
	HMACKey string `json:"hmac_key"`
}

// SM4Config configures a Cipher. Key and IV are hex strings of 32 characters.
// Mode is ECB or CBC (default ECB); Padding is pkcs7, zero or none (default
// pkcs7). IV is required for CBC and ignored for ECB.
type SM4Config struct {
	Key     string `json:"key"`
	Mode    string `json:"mode"`
	IV      string `json:"iv"`
	Padding string `json:"padding"`
}

func (c SM4Config) withDefaults() SM4Config {
	c.Key = strings.TrimSpace(c.Key)
	c.IV = strings.TrimSpace(c.IV)
	if c.Mode == "" {
		c.Mode = "ECB"
	}
	if c.Padding == "" {
		c.Padding = "pkcs7"
	}
	return c
}
