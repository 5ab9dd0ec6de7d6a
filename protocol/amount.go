// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/openledger/tokencore/pkg/errors"
)

// MaxAmountValue is the largest raw value an Amount may hold. Reserving two
// bits leaves headroom for intermediate arithmetic on serialized values.
const MaxAmountValue = 1<<62 - 1

// Amount is a fixed-point quantity of a token. Value is scaled by
// 10^Symbol.Precision, so Value 1000000 with precision 4 is 100.0000.
type Amount struct {
	Value  int64  `json:"value"`
	Symbol Symbol `json:"symbol"`
}

// IsValid returns true if the symbol is valid and the value is within range.
func (a Amount) IsValid() bool {
	return a.Symbol.IsValid() && a.Value <= MaxAmountValue && a.Value >= -MaxAmountValue
}

// Sign returns -1, 0, or +1 according to the sign of the value.
func (a Amount) Sign() int {
	switch {
	case a.Value < 0:
		return -1
	case a.Value > 0:
		return 1
	}
	return 0
}

// Add returns a + b. It returns false if the symbols differ or the sum leaves
// the valid range.
func (a Amount) Add(b Amount) (Amount, bool) {
	if a.Symbol != b.Symbol {
		return Amount{}, false
	}
	c := Amount{Value: a.Value + b.Value, Symbol: a.Symbol}
	// Overflow check on two's-complement addition
	if (b.Value > 0 && c.Value < a.Value) || (b.Value < 0 && c.Value > a.Value) {
		return Amount{}, false
	}
	if !c.IsValid() {
		return Amount{}, false
	}
	return c, true
}

// Sub returns a - b. It returns false if the symbols differ or the difference
// leaves the valid range.
func (a Amount) Sub(b Amount) (Amount, bool) {
	if a.Symbol != b.Symbol {
		return Amount{}, false
	}
	c := Amount{Value: a.Value - b.Value, Symbol: a.Symbol}
	if (b.Value < 0 && c.Value < a.Value) || (b.Value > 0 && c.Value > a.Value) {
		return Amount{}, false
	}
	if !c.IsValid() {
		return Amount{}, false
	}
	return c, true
}

// String formats the amount as a decimal string with the symbol code, e.g.
// "100.0000 FIO" for precision 4.
func (a Amount) String() string {
	v, sign := a.Value, ""
	if v < 0 {
		v, sign = -v, "-"
	}
	if a.Symbol.Precision == 0 {
		return fmt.Sprintf("%s%d %s", sign, v, a.Symbol.Code)
	}
	scale := pow10(a.Symbol.Precision)
	return fmt.Sprintf("%s%d.%0*d %s", sign, v/scale, int(a.Symbol.Precision), v%scale, a.Symbol.Code)
}

// ParseAmount parses a decimal string such as "12.3456" as an amount of the
// given symbol. The string must be all digits with at most one decimal point,
// and the fractional part must not exceed the symbol's precision; shorter
// fractions are right-padded with zeros. Malformed input is rejected, never
// coerced.
func ParseAmount(str string, sym Symbol) (Amount, error) {
	if !sym.IsValid() {
		return Amount{}, errors.InvalidSymbol.WithFormat("symbol %v is not valid", sym)
	}

	s, neg := str, false
	if strings.HasPrefix(s, "-") {
		s, neg = s[1:], true
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if frac == "" {
			return Amount{}, errors.InvalidAmount.WithFormat("amount %q is missing its fractional part", str)
		}
	}
	if whole == "" {
		return Amount{}, errors.InvalidAmount.WithFormat("amount %q is missing its whole part", str)
	}
	if len(frac) > int(sym.Precision) {
		return Amount{}, errors.InvalidAmount.WithFormat("amount %q has more than %d decimal places", str, sym.Precision)
	}

	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return Amount{}, errors.InvalidAmount.WithFormat("amount %q has a bad whole part: %w", str, err)
	}
	var f uint64
	if frac != "" {
		f, err = strconv.ParseUint(frac, 10, 63)
		if err != nil {
			return Amount{}, errors.InvalidAmount.WithFormat("amount %q has a bad fractional part: %w", str, err)
		}
		// Pad the fraction out to the full precision
		f *= uint64(pow10(sym.Precision - uint8(len(frac))))
	}

	scale := uint64(pow10(sym.Precision))
	if w > (MaxAmountValue-f)/scale {
		return Amount{}, errors.InvalidAmount.WithFormat("amount %q is out of range", str)
	}
	v := int64(w*scale + f)
	if neg {
		v = -v
	}
	return Amount{Value: v, Symbol: sym}, nil
}

// ParseAsset parses a decimal string with a trailing symbol code, such as
// "1000.0000 FIO". The symbol's precision is the number of decimal places
// written, so "1000.0000 FIO" is (4,FIO) and "7 XYZ" is (0,XYZ).
func ParseAsset(str string) (Amount, error) {
	i := strings.LastIndexByte(str, ' ')
	if i < 0 {
		return Amount{}, errors.InvalidAmount.WithFormat("asset %q is missing a symbol code", str)
	}
	num, code := str[:i], str[i+1:]

	var precision uint8
	if j := strings.IndexByte(num, '.'); j >= 0 {
		frac := num[j+1:]
		if len(frac) > MaxPrecision {
			return Amount{}, errors.InvalidAmount.WithFormat("asset %q has more than %d decimal places", str, MaxPrecision)
		}
		precision = uint8(len(frac))
	}

	sym := Symbol{Precision: precision, Code: code}
	if !sym.IsValid() {
		return Amount{}, errors.InvalidSymbol.WithFormat("asset %q has a bad symbol code", str)
	}
	return ParseAmount(num, sym)
}

func pow10(n uint8) int64 {
	v := int64(1)
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}
