package sm3

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	emsm3 "github.com/emmansun/gmsm/sm3"
	tjsm3 "github.com/tjfoc/gmsm/sm3"
)

type sm3TestData struct {
	in  string
	out string
}

// 国标 GB/T 32905-2016 附录A 及常用测试向量
var sm3Vectors = []sm3TestData{
	{"", "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b"},
	{"abc", "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"},
	{strings.Repeat("abcd", 16), "debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732"},
}

func TestSum(t *testing.T) {
	for _, data := range sm3Vectors {
		got := Sum([]byte(data.in))
		if hex.EncodeToString(got[:]) != data.out {
			t.Fatalf("Sum(%q) = %x, want %s", data.in, got, data.out)
		}
	}
}

func TestDigestWriteInChunks(t *testing.T) {
	msg := bytes.Repeat([]byte("0123456789"), 37)
	want := Sum(msg)
	for _, chunk := range []int{1, 3, 4, 63, 64, 65, 128} {
		d := New()
		for i := 0; i < len(msg); i += chunk {
			end := i + chunk
			if end > len(msg) {
				end = len(msg)
			}
			d.Write(msg[i:end])
		}
		if got := d.Sum(nil); !bytes.Equal(got, want[:]) {
			t.Fatalf("chunk %d: got %x, want %x", chunk, got, want)
		}
	}
}

func TestDigestEmptyWrite(t *testing.T) {
	d := New()
	if n, err := d.Write(nil); n != 0 || err != nil {
		t.Fatalf("Write(nil) = %d, %v", n, err)
	}
	want := Sum(nil)
	if got := d.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestSumDoesNotChangeState(t *testing.T) {
	d := New()
	d.Write([]byte("ab"))
	d.Sum(nil)
	d.Write([]byte("c"))
	want := Sum([]byte("abc"))
	if got := d.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("got %x, want %x", got, want)
	}

	d.Reset()
	d.Write([]byte("abc"))
	if got := d.Sum([]byte{0xff}); got[0] != 0xff || !bytes.Equal(got[1:], want[:]) {
		t.Fatalf("Sum with prefix = %x", got)
	}
	if d.Size() != Size || d.BlockSize() != BlockSize {
		t.Fatalf("Size/BlockSize = %d/%d", d.Size(), d.BlockSize())
	}
}

func TestSumAgainstReferenceImplementations(t *testing.T) {
	msg := make([]byte, 0, 300)
	for i := 0; i < 300; i++ {
		msg = append(msg, byte(i*7+1))
		got := Sum(msg)
		em := emsm3.Sum(msg)
		if got != em {
			t.Fatalf("len %d: got %x, emmansun/gmsm %x", len(msg), got, em)
		}
		if tj := tjsm3.Sm3Sum(msg); !bytes.Equal(got[:], tj) {
			t.Fatalf("len %d: got %x, tjfoc/gmsm %x", len(msg), got, tj)
		}
	}
}

func BenchmarkSum1K(b *testing.B) {
	buf := make([]byte, 1024)
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		Sum(buf)
	}
}
