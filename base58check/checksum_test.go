package base58check

import (
	"bytes"
	"encoding/hex"
	"testing"

	"xdao.co/base58check/hashutil"
)

func TestChecksum_KnownValues(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, "5df6e0e2"},
		{[]byte{0x00}, "1406e058"},
	}
	for _, c := range cases {
		got := Checksum(c.in)
		if hex.EncodeToString(got[:]) != c.want {
			t.Fatalf("Checksum(%x) = %x, want %s", c.in, got, c.want)
		}
	}
}

func TestChecksum_TruncatesDoubleHash(t *testing.T) {
	input := []byte("versioned payload")
	got := Checksum(input)
	full := hashutil.DoubleSum256(input)
	if !bytes.Equal(got[:], full[:ChecksumSize]) {
		t.Fatalf("Checksum(%q) = %x, want first %d bytes of %x", input, got, ChecksumSize, full)
	}
}
