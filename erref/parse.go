package erref

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue reads an HRESULT from untyped input such as a command-line argument.
// It accepts 0x-prefixed hex, decimal, and negative decimal, which is reinterpreted as two's
// complement so that "-2147467259" yields 0x80004005. Any other input returns an
// *InvalidArgumentError.
func ParseValue(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &InvalidArgumentError{Message: "empty value"}
	}

	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < math.MinInt32 {
			return 0, &InvalidArgumentError{Message: "value " + strconv.Quote(s) + " is not a 32-bit integer"}
		}
		return uint32(int32(n)), nil
	}

	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, &InvalidArgumentError{Message: "value " + strconv.Quote(s) + " is not a 32-bit integer"}
	}
	return uint32(n), nil
}
