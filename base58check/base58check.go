// Package base58check converts binary payloads to and from a
// human-transcribable base-58 text form carrying a version prefix and a
// 4-byte double-SHA-256 checksum. Every operation is a pure function of
// its input; the package holds no mutable state and is safe for
// concurrent use.
package base58check

import (
	"bytes"
	"strings"
)

// Result is the outcome of one Encode or Decode call. Every call builds a
// fresh Result; no field aliases caller-owned memory.
type Result struct {
	// Encoded is the base-58 text form. Decode carries the input string
	// through unchanged.
	Encoded string

	// Payload is the raw payload with the version prefix and checksum
	// stripped.
	Payload []byte

	// Tag is the symbolic version, or "" when the prefix has no registry
	// entry.
	Tag Version

	// Prefix is the canonical version prefix bytes. Empty when no
	// registered prefix matched during decode.
	Prefix []byte
}

// Encode renders payload under the version selected by spec. The only
// failure mode is an unresolvable symbolic version tag.
func Encode(payload []byte, spec VersionSpec) (*Result, error) {
	tag, prefix, err := Resolve(spec)
	if err != nil {
		return nil, err
	}

	versioned := make([]byte, 0, len(prefix)+len(payload)+ChecksumSize)
	versioned = append(versioned, prefix...)
	versioned = append(versioned, payload...)
	cksum := Checksum(versioned)
	full := append(versioned, cksum[:]...)

	encoded, err := encodeRaw(full)
	if err != nil {
		return nil, err
	}
	return &Result{
		Encoded: encoded,
		Payload: clone(payload),
		Tag:     tag,
		Prefix:  prefix,
	}, nil
}

// Decode parses a base58check string, verifies its checksum, and splits
// the version prefix from the payload. The pipeline runs alphabet
// validation, byte conversion, checksum verification, then version
// extraction, exiting on the first failure.
func Decode(encoded string) (*Result, error) {
	for i := 0; i < len(encoded); i++ {
		if c := encoded[i]; c >= 0x80 || charToDigit[c] < 0 {
			return nil, newError(KindAlphabet, "B58-ALPHA-001",
				"encoded text contains a character outside the base-58 alphabet")
		}
	}

	decoded, err := decodeRaw(encoded)
	if err != nil {
		return nil, err
	}

	// Too few bytes for a checksum (including the empty input) is a
	// checksum failure, not a distinct error class.
	if len(decoded) < ChecksumSize {
		return nil, newError(KindChecksum, "B58-SUM-002",
			"decoded bytes too short to carry a checksum")
	}
	head := decoded[:len(decoded)-ChecksumSize]
	tail := decoded[len(decoded)-ChecksumSize:]
	cksum := Checksum(head)
	if !bytes.Equal(cksum[:], tail) {
		return nil, newError(KindChecksum, "B58-SUM-001", "checksum mismatch")
	}

	tag, prefix := tagForPrefix(head)
	return &Result{
		Encoded: encoded,
		Payload: clone(head[len(prefix):]),
		Tag:     tag,
		Prefix:  prefix,
	}, nil
}

// encodeRaw is the base-58 rendering of b: one zero character per leading
// zero byte, then the base-58 digits of the remaining bytes. An all-zero
// buffer renders as zero characters only.
func encodeRaw(b []byte) (string, error) {
	z := 0
	for z < len(b) && b[z] == 0 {
		z++
	}
	body, err := digitsToString(bytesToDigits(b[z:]))
	if err != nil {
		return "", err
	}
	if z == 0 {
		return body, nil
	}
	return strings.Repeat(string(zeroChar), z) + body, nil
}

// decodeRaw inverts encodeRaw: leading zero characters become zero bytes,
// the remaining characters are read as a base-58 integer. The empty string
// decodes to the empty byte sequence.
func decodeRaw(s string) ([]byte, error) {
	z := 0
	for z < len(s) && s[z] == zeroChar {
		z++
	}
	digits, err := stringToDigits(s[z:])
	if err != nil {
		return nil, err
	}
	body := digitsToBytes(digits)
	out := make([]byte, 0, z+len(body))
	for i := 0; i < z; i++ {
		out = append(out, 0x00)
	}
	return append(out, body...), nil
}
