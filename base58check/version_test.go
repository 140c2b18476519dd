package base58check

import (
	"bytes"
	"strings"
	"testing"
)

func TestResolve_SpecifierShapesAgree(t *testing.T) {
	specs := map[string]VersionSpec{
		"tag":     TagVersion(VersionWIF),
		"integer": NumericVersion(0x80),
		"bytes":   BytesVersion([]byte{0x80}),
	}
	for name, spec := range specs {
		tag, prefix, err := Resolve(spec)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", name, err)
		}
		if tag != VersionWIF {
			t.Fatalf("Resolve(%s) tag = %s, want wif", name, tag)
		}
		if !bytes.Equal(prefix, []byte{0x80}) {
			t.Fatalf("Resolve(%s) prefix = %x", name, prefix)
		}
	}
}

func TestResolve_SpecifierShapesEncodeIdentically(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	var encoded []string
	for _, spec := range []VersionSpec{
		TagVersion(VersionWIF),
		NumericVersion(0x80),
		BytesVersion([]byte{0x80}),
	} {
		res, err := Encode(payload, spec)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		encoded = append(encoded, res.Encoded)
	}
	if encoded[0] != encoded[1] || encoded[1] != encoded[2] {
		t.Fatalf("specifier shapes diverged: %v", encoded)
	}
}

func TestResolve_UnrecognizedTagEnumeratesKnownTags(t *testing.T) {
	_, _, err := Resolve(TagVersion("doge"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindVersion) {
		t.Fatalf("kind = %v", err)
	}
	for _, tag := range KnownVersions() {
		if !strings.Contains(err.Error(), string(tag)) {
			t.Fatalf("error message does not mention %s: %s", tag, err)
		}
	}
}

func TestResolve_UnregisteredBytesAcceptedSilently(t *testing.T) {
	tag, prefix, err := Resolve(BytesVersion([]byte{0x42, 0x42}))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tag != "" {
		t.Fatalf("tag = %s, want empty", tag)
	}
	if !bytes.Equal(prefix, []byte{0x42, 0x42}) {
		t.Fatalf("prefix = %x", prefix)
	}
}

func TestResolve_IntegerMinimalBigEndian(t *testing.T) {
	cases := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{0x05, []byte{0x05}},
		{0x80, []byte{0x80}},
		{0x0488B21E, []byte{0x04, 0x88, 0xB2, 0x1E}},
		{0x0100, []byte{0x01, 0x00}},
	}
	for _, c := range cases {
		_, prefix, err := Resolve(NumericVersion(c.n))
		if err != nil {
			t.Fatalf("Resolve(%#x): %v", c.n, err)
		}
		if !bytes.Equal(prefix, c.want) {
			t.Fatalf("Resolve(%#x) prefix = %x, want %x", c.n, prefix, c.want)
		}
	}
}

func TestResolve_IntegerFindsRegisteredTags(t *testing.T) {
	cases := []struct {
		n   uint64
		tag Version
	}{
		{0, VersionP2PKH},
		{0x05, VersionP2SH},
		{0x0488ADE4, VersionBIP32Privkey},
		{0xEF, VersionTestnetWIF},
	}
	for _, c := range cases {
		tag, _, err := Resolve(NumericVersion(c.n))
		if err != nil {
			t.Fatalf("Resolve(%#x): %v", c.n, err)
		}
		if tag != c.tag {
			t.Fatalf("Resolve(%#x) tag = %s, want %s", c.n, tag, c.tag)
		}
	}
}

func TestTagForPrefix_DeclarationOrder(t *testing.T) {
	tag, prefix := tagForPrefix([]byte{0x6F, 0xAA, 0xBB})
	if tag != VersionTestnetP2PKH || !bytes.Equal(prefix, []byte{0x6F}) {
		t.Fatalf("tagForPrefix = %s/%x", tag, prefix)
	}
	tag, prefix = tagForPrefix([]byte{0x42, 0xAA})
	if tag != "" || len(prefix) != 0 {
		t.Fatalf("unmatched head gave %s/%x", tag, prefix)
	}
}

func TestRegistry_NoPrefixIsPrefixOfAnother(t *testing.T) {
	for i, a := range versionTable {
		for j, b := range versionTable {
			if i == j {
				continue
			}
			if bytes.HasPrefix(a.prefix, b.prefix) {
				t.Fatalf("prefix of %s is a prefix of %s", b.tag, a.tag)
			}
		}
	}
}

func TestKnownVersions_DeclarationOrder(t *testing.T) {
	tags := KnownVersions()
	if len(tags) != len(versionTable) {
		t.Fatalf("KnownVersions length = %d", len(tags))
	}
	if tags[0] != VersionP2PKH || tags[len(tags)-1] != VersionTestnetBIP32Privkey {
		t.Fatalf("unexpected order: %v", tags)
	}
}
