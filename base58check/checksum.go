package base58check

import "xdao.co/base58check/hashutil"

// ChecksumSize is the number of checksum bytes appended to the versioned
// payload before base-58 rendering.
const ChecksumSize = 4

// Checksum returns the 4-byte integrity tag for input: the first four
// bytes of SHA-256(SHA-256(input)). Total for every input length,
// including zero.
func Checksum(input []byte) [ChecksumSize]byte {
	var cksum [ChecksumSize]byte
	copy(cksum[:], hashutil.DoubleSum256(input))
	return cksum
}
