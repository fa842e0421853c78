package token

import (
	"strconv"
	"strings"

	"github.com/kinecosystem/token-program/program"
)

// maxUiAmountDigits bounds the significant digits of a parsed UI amount.
// The comparison is done on digit strings to avoid big-integer arithmetic.
// The bound does not cover the zeros added when scaling by the mint's
// decimals; a value that passes it but overflows a uint64 once scaled is
// rejected by the final parse in UiAmountToAmount.
const maxUiAmountDigits = "1844674407370955"

// AmountToUiAmount renders a raw amount as a canonical decimal string for
// the given number of decimals: no trailing fractional zeros, no dangling
// point, and zero always renders as "0".
func AmountToUiAmount(amount uint64, decimals byte) string {
	s := strconv.FormatUint(amount, 10)
	if decimals == 0 {
		return s
	}

	if len(s) <= int(decimals) {
		s = strings.Repeat("0", int(decimals)-len(s)+1) + s
	}

	split := len(s) - int(decimals)
	intPart, frac := s[:split], strings.TrimRight(s[split:], "0")
	if frac == "" {
		return intPart
	}
	return intPart + "." + frac
}

// UiAmountToAmount parses a canonical decimal string back into a raw
// amount. The accepted grammar is a digit string with an optional leading
// '+' and at most one '.'; the fractional part may not exceed the mint's
// decimals once trailing zeros are stripped, and the combined significant
// digits may not exceed the uint64-derived bound.
func UiAmountToAmount(ui string, decimals byte) (uint64, error) {
	if ui == "" || ui == "." {
		return 0, program.ErrInvalidArgument
	}
	if ui[0] == '-' {
		return 0, program.ErrInvalidArgument
	}
	for _, c := range ui {
		if (c < '0' || c > '9') && c != '+' && c != '.' {
			return 0, program.ErrInvalidArgument
		}
	}

	// A bare point followed only by zeros carries no digits at all.
	if ui[0] == '.' && strings.Trim(ui[1:], "0") == "" {
		return 0, program.ErrInvalidArgument
	}

	s := strings.TrimPrefix(ui, "+")
	if strings.ContainsRune(s, '+') {
		return 0, program.ErrInvalidArgument
	}
	if strings.Count(s, ".") > 1 {
		return 0, program.ErrInvalidArgument
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	fracTrimmed := strings.TrimRight(fracPart, "0")
	if len(fracTrimmed) > int(decimals) {
		return 0, program.ErrInvalidArgument
	}

	if uiAmountOverflows(intPart, fracTrimmed) {
		return 0, program.ErrInvalidArgument
	}

	digits := intPart + fracTrimmed + strings.Repeat("0", int(decimals)-len(fracTrimmed))
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, nil
	}

	amount, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, program.ErrInvalidArgument
	}
	return amount, nil
}

// uiAmountOverflows compares the significant digits of an amount against
// maxUiAmountDigits lexicographically.
func uiAmountOverflows(intPart, frac string) bool {
	hi := strings.TrimLeft(intPart, "0")
	lo := frac
	if hi == "" {
		lo = strings.TrimLeft(frac, "0")
	}

	total := len(hi) + len(lo)
	switch {
	case total < len(maxUiAmountDigits):
		return false
	case total > len(maxUiAmountDigits):
		return true
	}

	if len(hi) > len(maxUiAmountDigits) {
		return true
	}
	maxHi, maxLo := maxUiAmountDigits[:len(hi)], maxUiAmountDigits[len(hi):]
	return hi > maxHi || (hi == maxHi && lo > maxLo)
}
