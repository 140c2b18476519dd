package base58check

import (
	"bytes"
	"fmt"
	"strings"
)

// Version is a symbolic tag naming a registered version prefix. The zero
// value means "no tag": a prefix (or absence of one) with no registry entry.
type Version string

const (
	VersionP2PKH               Version = "p2pkh"
	VersionP2SH                Version = "p2sh"
	VersionWIF                 Version = "wif"
	VersionBIP32Pubkey         Version = "bip32_pubkey"
	VersionBIP32Privkey        Version = "bip32_privkey"
	VersionTestnetP2PKH        Version = "testnet_p2pkh"
	VersionTestnetP2SH         Version = "testnet_p2sh"
	VersionTestnetWIF          Version = "testnet_wif"
	VersionTestnetBIP32Pubkey  Version = "testnet_bip32_pubkey"
	VersionTestnetBIP32Privkey Version = "testnet_bip32_privkey"
)

type versionEntry struct {
	tag    Version
	prefix []byte
}

// versionTable is the static tag↔prefix registry. Declaration order is the
// prefix match order during decode. The table is never mutated after
// construction and is safe for unsynchronized concurrent reads.
var versionTable = []versionEntry{
	{VersionP2PKH, []byte{0x00}},
	{VersionP2SH, []byte{0x05}},
	{VersionWIF, []byte{0x80}},
	{VersionBIP32Pubkey, []byte{0x04, 0x88, 0xB2, 0x1E}},
	{VersionBIP32Privkey, []byte{0x04, 0x88, 0xAD, 0xE4}},
	{VersionTestnetP2PKH, []byte{0x6F}},
	{VersionTestnetP2SH, []byte{0xC4}},
	{VersionTestnetWIF, []byte{0xEF}},
	{VersionTestnetBIP32Pubkey, []byte{0x04, 0x35, 0x87, 0xCF}},
	{VersionTestnetBIP32Privkey, []byte{0x04, 0x35, 0x83, 0x94}},
}

var prefixByTag = func() map[Version][]byte {
	m := make(map[Version][]byte, len(versionTable))
	for i, e := range versionTable {
		if _, dup := m[e.tag]; dup {
			panic(fmt.Sprintf("base58check: duplicate version tag %q", e.tag))
		}
		// Declaration-order prefix matching is only unambiguous when no
		// registered prefix is a prefix of another; enforce that here so
		// table extensions cannot introduce order-dependent decodes.
		for _, prev := range versionTable[:i] {
			if bytes.HasPrefix(e.prefix, prev.prefix) || bytes.HasPrefix(prev.prefix, e.prefix) {
				panic(fmt.Sprintf("base58check: ambiguous version prefixes for %q and %q", prev.tag, e.tag))
			}
		}
		m[e.tag] = e.prefix
	}
	return m
}()

// KnownVersions returns the registered tags in declaration order.
func KnownVersions() []Version {
	tags := make([]Version, len(versionTable))
	for i, e := range versionTable {
		tags[i] = e.tag
	}
	return tags
}

// A VersionSpec selects the version prefix for Encode. The accepted shapes
// (symbolic tag, non-negative integer, raw prefix bytes) all normalize to
// canonical prefix bytes through Resolve; nothing downstream dispatches on
// the shape.
type VersionSpec interface {
	versionSpec()
}

type tagSpec Version

type numberSpec uint64

type bytesSpec []byte

func (tagSpec) versionSpec()    {}
func (numberSpec) versionSpec() {}
func (bytesSpec) versionSpec()  {}

// TagVersion selects a version by its symbolic registry tag.
func TagVersion(tag Version) VersionSpec { return tagSpec(tag) }

// NumericVersion selects a version by the integer value of its prefix,
// converted to the minimal big-endian byte form (0 yields the single zero
// byte).
func NumericVersion(n uint64) VersionSpec { return numberSpec(n) }

// BytesVersion selects a version by its raw prefix bytes. Unregistered
// prefixes are accepted; the resulting tag is simply absent.
func BytesVersion(prefix []byte) VersionSpec { return bytesSpec(prefix) }

// Resolve normalizes spec to its canonical prefix bytes and, when the
// prefix is registered, the matching tag. Only a symbolic tag missing from
// the registry is an error; unregistered raw prefixes resolve with an
// empty tag.
func Resolve(spec VersionSpec) (Version, []byte, error) {
	switch s := spec.(type) {
	case tagSpec:
		prefix, ok := prefixByTag[Version(s)]
		if !ok {
			return "", nil, newError(KindVersion, "B58-VER-001",
				fmt.Sprintf("unrecognized version %q, expected one of: %s", string(s), knownVersionList()))
		}
		return Version(s), clone(prefix), nil
	case numberSpec:
		return resolveBytes(minimalBigEndian(uint64(s)))
	case bytesSpec:
		return resolveBytes(clone(s))
	default:
		return "", nil, newError(KindInternal, "B58-INTERNAL-001",
			fmt.Sprintf("unsupported version spec type %T", spec))
	}
}

func resolveBytes(prefix []byte) (Version, []byte, error) {
	for _, e := range versionTable {
		if bytes.Equal(e.prefix, prefix) {
			return e.tag, prefix, nil
		}
	}
	return "", prefix, nil
}

// tagForPrefix scans the registry in declaration order and returns the
// first entry whose prefix starts head, along with that prefix. A head
// matching no entry is all payload: empty tag, empty prefix.
func tagForPrefix(head []byte) (Version, []byte) {
	for _, e := range versionTable {
		if bytes.HasPrefix(head, e.prefix) {
			return e.tag, clone(e.prefix)
		}
	}
	return "", []byte{}
}

// minimalBigEndian returns the shortest big-endian byte form of n; zero
// yields the single zero byte.
func minimalBigEndian(n uint64) []byte {
	if n == 0 {
		return []byte{0x00}
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n)
		n >>= 8
	}
	return clone(buf[i:])
}

func knownVersionList() string {
	var b strings.Builder
	for i, e := range versionTable {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(e.tag))
	}
	return b.String()
}

func clone(b []byte) []byte {
	return append([]byte{}, b...)
}
