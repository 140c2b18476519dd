// Package hashutil wraps the fixed hash primitives the base58check codec
// is defined over: SHA-256, double SHA-256, and RIPEMD160(SHA-256).
package hashutil

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // SA1019: required by the address format, not replaceable
)

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) []byte {
	s := sha256.Sum256(data)
	return s[:]
}

// DoubleSum256 returns SHA-256(SHA-256(data)). This is the 32-byte digest
// the base58check checksum is truncated from.
func DoubleSum256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 returns RIPEMD160(SHA-256(data)), the 20-byte digest used to
// derive pay-to-pubkey-hash payloads.
func Hash160(data []byte) []byte {
	s := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(s[:])
	return r.Sum(nil)
}
