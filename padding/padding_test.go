package padding

import (
	"bytes"
	"errors"
	"testing"
)

func TestPKCS7(t *testing.T) {
	for n := 0; n <= 33; n++ {
		src := bytes.Repeat([]byte{'a'}, n)
		padded, err := PKCS7.Pad(src)
		if err != nil {
			t.Fatal(err)
		}
		pad := BlockSize - n%BlockSize
		if len(padded) != n+pad || len(padded)%BlockSize != 0 {
			t.Fatalf("len %d: padded length %d", n, len(padded))
		}
		if padded[len(padded)-1] != byte(pad) {
			t.Fatalf("len %d: last byte %d, want %d", n, padded[len(padded)-1], pad)
		}
		got, err := PKCS7.Unpad(padded)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("len %d: Unpad = %x, want %x", n, got, src)
		}
	}
}

func TestPKCS7DoesNotModifyInput(t *testing.T) {
	backing := []byte("0123456789abcdefXXXX")
	src := backing[:10]
	if _, err := PKCS7.Pad(src); err != nil {
		t.Fatal(err)
	}
	if string(backing) != "0123456789abcdefXXXX" {
		t.Fatalf("Pad wrote into the caller's buffer: %q", backing)
	}
}

func TestPKCS7UnpadErrors(t *testing.T) {
	block := func(tail ...byte) []byte {
		b := bytes.Repeat([]byte{'x'}, BlockSize-len(tail))
		return append(b, tail...)
	}
	cases := map[string]struct {
		in  []byte
		err error
	}{
		"empty":        {nil, ErrInvalidPadding},
		"zero length":  {block(0), ErrInvalidPadding},
		"too long":     {block(17), ErrInvalidPadding},
		"inconsistent": {block(1, 3, 3), ErrInvalidPadding},
		"unaligned":    {[]byte{1, 1, 1}, ErrBlockAlignment},
	}
	for name, c := range cases {
		if _, err := PKCS7.Unpad(c.in); !errors.Is(err, c.err) {
			t.Fatalf("%s: err = %v, want %v", name, err, c.err)
		}
	}
}

func TestZero(t *testing.T) {
	padded, err := Zero.Pad([]byte("test"))
	if err != nil {
		t.Fatal(err)
	}
	if len(padded) != BlockSize || !bytes.Equal(padded[4:], make([]byte, 12)) {
		t.Fatalf("padded = %x", padded)
	}
	got, err := Zero.Unpad(padded)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "test" {
		t.Fatalf("Unpad = %q", got)
	}

	aligned := bytes.Repeat([]byte{'a'}, 2*BlockSize)
	if padded, _ := Zero.Pad(aligned); len(padded) != len(aligned) {
		t.Fatalf("aligned input grew to %d bytes", len(padded))
	}
	if padded, _ := Zero.Pad(nil); len(padded) != 0 {
		t.Fatalf("empty input padded to %d bytes", len(padded))
	}
}

// 补零方案无法区分原文尾部的0x00与填充字节。
func TestZeroUnpadStripsTrailingZeros(t *testing.T) {
	src := []byte{'a', 'b', 0, 0}
	padded, _ := Zero.Pad(src)
	got, _ := Zero.Unpad(padded)
	if !bytes.Equal(got, []byte("ab")) {
		t.Fatalf("Unpad = %x, want 6162", got)
	}
}

func TestNone(t *testing.T) {
	if _, err := None.Pad([]byte("short")); !errors.Is(err, ErrBlockAlignment) {
		t.Fatalf("err = %v, want ErrBlockAlignment", err)
	}
	src := bytes.Repeat([]byte{7}, BlockSize)
	padded, err := None.Pad(src)
	if err != nil || !bytes.Equal(padded, src) {
		t.Fatalf("Pad = %x, %v", padded, err)
	}
	if _, err := None.Unpad(src[:5]); !errors.Is(err, ErrBlockAlignment) {
		t.Fatalf("err = %v, want ErrBlockAlignment", err)
	}
}

func TestParse(t *testing.T) {
	for name, want := range map[string]Scheme{"pkcs7": PKCS7, "PKCS7": PKCS7, "zero": Zero, "None": None} {
		got, err := Parse(name)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := Parse("iso10126"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}
