package base58check

import "math/big"

// Base conversion between big-endian byte sequences and base-58 digit
// sequences, via an arbitrary-precision integer. Leading zero bytes carry
// no positional value and are not represented here; callers account for
// them separately (see encodeRaw/decodeRaw).

var radix = big.NewInt(58)

// bytesToDigits interprets b as a big-endian unsigned integer and returns
// its base-58 digits, most significant first. An all-zero or empty input
// yields an empty digit sequence.
func bytesToDigits(b []byte) []int {
	n := new(big.Int).SetBytes(b)
	mod := new(big.Int)
	var digits []int
	for n.Sign() > 0 {
		n.DivMod(n, radix, mod)
		digits = append(digits, int(mod.Int64()))
	}
	// Remainders come out least significant first.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// digitsToBytes interprets digits (most significant first) as a base-58
// integer and returns its minimal big-endian byte representation. An empty
// digit sequence (or all-zero digits) yields an empty byte sequence.
func digitsToBytes(digits []int) []byte {
	n := new(big.Int)
	for _, d := range digits {
		n.Mul(n, radix)
		n.Add(n, big.NewInt(int64(d)))
	}
	return n.Bytes()
}
