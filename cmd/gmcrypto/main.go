// Command gmcrypto hashes, authenticates and encrypts data with SM3 and SM4.
//
//	gmcrypto hash    [-hmac-key k] [-in msg]
//	gmcrypto hmac     -hmac-key k  [-in msg]
//	gmcrypto verify  [-hmac-key k] -digest hex [-in msg]
//	gmcrypto encrypt  -key hex [-mode ECB|CBC] [-iv hex] [-padding pkcs7|zero|none] [-format hex|base64] [-in msg]
//	gmcrypto decrypt  -key hex [-mode ECB|CBC] [-iv hex] [-padding pkcs7|zero|none] [-format hex|base64] [-in text]
//
// Without -in the message is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/paul-lee-attorney/gmcrypto/gmcrypto"
)

var errMismatch = errors.New("digest mismatch")

func main() {
	logger, err := zap.NewProduction()
	if os.Getenv("GMCRYPTO_DEBUG") != "" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("gmcrypto failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	if len(args) == 0 {
		return errors.New("missing command: hash, hmac, verify, encrypt or decrypt")
	}
	cmd := args[0]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	in := fs.String("in", "", "message; read from stdin when empty")
	hmacKey := fs.String("hmac-key", "", "HMAC-SM3 key")
	digest := fs.String("digest", "", "hex digest to verify against")
	key := fs.String("key", "", "SM4 key, 32 hex characters")
	mode := fs.String("mode", "ECB", "block mode: ECB or CBC")
	iv := fs.String("iv", "", "CBC initialization vector, 32 hex characters")
	pad := fs.String("padding", "pkcs7", "padding: pkcs7, zero or none")
	format := fs.String("format", "base64", "ciphertext encoding: hex or base64")
	if err := fs.Parse(args[1:]); err != nil {
		return errors.Wrap(err, cmd)
	}

	msg := []byte(*in)
	if *in == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "read stdin")
		}
		msg = b
	}

	opts := []gmcrypto.Option{gmcrypto.WithLogger(logger)}

	switch cmd {
	case "hash", "hmac", "verify":
		if cmd == "hmac" && *hmacKey == "" {
			return errors.New("hmac: -hmac-key is required")
		}
		h := gmcrypto.NewHasher(gmcrypto.SM3Config{HMAC: *hmacKey != "", HMACKey: *hmacKey}, opts...)
		if cmd == "verify" {
			if !h.Verify(msg, *digest) {
				fmt.Fprintln(stdout, "false")
				return errMismatch
			}
			fmt.Fprintln(stdout, "true")
			return nil
		}
		fmt.Fprintln(stdout, h.Hash(msg))
		return nil

	case "encrypt", "decrypt":
		c, err := gmcrypto.NewCipher(gmcrypto.SM4Config{Key: *key, Mode: *mode, IV: *iv, Padding: *pad}, opts...)
		if err != nil {
			return err
		}
		return crypt(c, cmd == "encrypt", *format, msg, stdout)
	}
	return errors.Errorf("unknown command %q", cmd)
}

func crypt(c *gmcrypto.Cipher, encrypt bool, format string, msg []byte, stdout io.Writer) error {
	switch strings.ToLower(format) {
	case "hex":
		if encrypt {
			s, err := c.EncryptHex(msg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, s)
			return err
		}
		pt, err := c.DecryptHex(strings.TrimSpace(string(msg)))
		if err != nil {
			return err
		}
		_, err = stdout.Write(pt)
		return err
	case "base64":
		if encrypt {
			s, err := c.EncryptBase64(msg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, s)
			return err
		}
		pt, err := c.DecryptBase64(strings.TrimSpace(string(msg)))
		if err != nil {
			return err
		}
		_, err = stdout.Write(pt)
		return err
	}
	return errors.Errorf("unknown format %q", format)
}
