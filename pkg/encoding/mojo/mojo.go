/*
Package mojo converts between human-readable decimal asset amounts and
amounts in mojos, the smallest indivisible unit. XCH carries 12 decimal
places, CAT assets carry 3.
*/
package mojo

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Decimal precision of the supported asset kinds.
const (
	XCHPrecision = 12
	CATPrecision = 3
)

// ErrPrecision is returned when an amount has more fractional digits than
// the asset's precision allows.
var ErrPrecision = errors.New("too many decimal places")

// XCHToMojo parses s as a decimal XCH amount and returns it in mojos.
func XCHToMojo(s string) (uint64, error) {
	return FromString(s, XCHPrecision)
}

// MojoToXCH formats a mojo amount as a decimal XCH amount.
func MojoToXCH(m uint64) string {
	return toString(m, XCHPrecision)
}

// CATToMojo parses s as a decimal CAT amount and returns it in mojos.
func CATToMojo(s string) (uint64, error) {
	return FromString(s, CATPrecision)
}

// MojoToCAT formats a mojo amount as a decimal CAT amount.
func MojoToCAT(m uint64) string {
	return toString(m, CATPrecision)
}

// FromString parses s, which must be a non-negative fixed point number with
// precision up to 10^-prec, and returns the amount in the smallest unit.
func FromString(s string, prec int) (uint64, error) {
	parts := strings.SplitN(s, ".", 2)
	ip, ok := new(big.Int).SetString(parts[0], 10)
	if !ok || ip.Sign() < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	res := new(big.Int).Mul(ip, big.NewInt(int64(pow10(prec))))
	if len(parts) == 2 {
		fp := strings.TrimRight(parts[1], "0")
		if len(fp) > prec {
			return 0, fmt.Errorf("%w: %q exceeds precision %d", ErrPrecision, s, prec)
		}
		if len(fp) > 0 {
			frac, err := strconv.ParseUint(fp, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid amount %q", s)
			}
			res.Add(res, big.NewInt(int64(frac*pow10(prec-len(fp)))))
		}
	}
	if !res.IsUint64() {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	return res.Uint64(), nil
}

func toString(m uint64, prec int) string {
	buf := new(strings.Builder)
	div := pow10(prec)
	buf.WriteString(strconv.FormatUint(m/div, 10))
	if frac := m % div; frac > 0 {
		buf.WriteRune('.')
		str := strconv.FormatUint(frac, 10)
		for i := len(str); i < prec; i++ {
			buf.WriteRune('0')
		}
		buf.WriteString(strings.TrimRight(str, "0"))
	}
	return buf.String()
}

func pow10(n int) uint64 {
	res := uint64(1)
	for i := 0; i < n; i++ {
		res *= 10
	}
	return res
}
