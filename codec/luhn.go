package codec

import (
	"fmt"
)

const luhnBase = 16

// LuhnMod16 computes the Luhn mod 16 check digit of a string of hex digits.
//
// Digits are walked from the rightmost one to the left. The rightmost digit
// is multiplied by 2, the next by 1 and so on. Every product is folded into a
// single base-16 digit as product/16 + product%16 and the folded values are
// summed. The check digit is (16 - sum%16) % 16 as a lower-case hex char.
func LuhnMod16(digits string) (byte, error) {
	factor := 2
	sum := 0

	for i := len(digits) - 1; i >= 0; i-- {
		value, ok := hexValue(digits[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q at %d", ErrInvalidHexDigit, digits[i], i)
		}

		addend := factor * value
		sum += addend/luhnBase + addend%luhnBase

		if factor == 2 {
			factor = 1
		} else {
			factor = 2
		}
	}

	return hexDigits[(luhnBase-sum%luhnBase)%luhnBase], nil
}

// ValidLuhnMod16 reports whether check is the Luhn mod 16 check digit of digits.
func ValidLuhnMod16(digits string, check byte) bool {
	expected, err := LuhnMod16(digits)
	if err != nil {
		return false
	}

	return expected == check
}
