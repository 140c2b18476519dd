package base58check

import "fmt"

// Alphabet is the 58-symbol encoding alphabet, in digit order. It excludes
// the visually ambiguous characters 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// zeroChar renders a leading zero byte, which carries no positional value
// and would otherwise vanish in base conversion.
var zeroChar = Alphabet[0]

// charToDigit maps an ASCII byte to its digit value, or -1 for bytes
// outside the alphabet. Non-ASCII bytes never appear in the table and are
// rejected by bounds checking.
var charToDigit = func() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = -1
	}
	for d := 0; d < len(Alphabet); d++ {
		t[Alphabet[d]] = int8(d)
	}
	return t
}()

// DigitToChar returns the alphabet character for digit d (0..57).
func DigitToChar(d int) (byte, error) {
	if d < 0 || d >= len(Alphabet) {
		return 0, newError(KindAlphabet, "B58-ALPHA-002", fmt.Sprintf("digit %d outside base-58 range", d))
	}
	return Alphabet[d], nil
}

// CharToDigit returns the digit value (0..57) of alphabet character c.
func CharToDigit(c byte) (int, error) {
	if c >= 0x80 || charToDigit[c] < 0 {
		return 0, newError(KindAlphabet, "B58-ALPHA-001", fmt.Sprintf("character %q not in base-58 alphabet", c))
	}
	return int(charToDigit[c]), nil
}

// ValidString reports whether every character of s belongs to the alphabet.
// The empty string is trivially valid.
func ValidString(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x80 || charToDigit[c] < 0 {
			return false
		}
	}
	return true
}

// stringToDigits maps each character of s to its digit value, in order.
func stringToDigits(s string) ([]int, error) {
	digits := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		d, err := CharToDigit(s[i])
		if err != nil {
			return nil, err
		}
		digits = append(digits, d)
	}
	return digits, nil
}

// digitsToString maps each digit to its alphabet character, in order.
func digitsToString(digits []int) (string, error) {
	out := make([]byte, 0, len(digits))
	for _, d := range digits {
		c, err := DigitToChar(d)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	return string(out), nil
}
