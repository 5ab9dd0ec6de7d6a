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

// MaxSymbolLength is the maximum length of a symbol code.
const MaxSymbolLength = 7

// MaxPrecision is the maximum number of decimal places a symbol may carry.
const MaxPrecision = 18

// Symbol identifies a currency denomination as a (precision, code) pair. Two
// symbols are equal only if both fields match exactly; a precision mismatch is
// never coerced.
type Symbol struct {
	Precision uint8  `json:"precision"`
	Code      string `json:"code"`
}

// IsValid returns true if the code is nonempty, all uppercase A-Z, at most
// MaxSymbolLength characters, and the precision is within bounds.
func (s Symbol) IsValid() bool {
	if len(s.Code) == 0 || len(s.Code) > MaxSymbolLength {
		return false
	}
	if s.Precision > MaxPrecision {
		return false
	}
	for _, c := range s.Code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// Equal returns true if both precision and code match.
func (s Symbol) Equal(t Symbol) bool { return s == t }

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// ParseSymbol parses a "precision,CODE" pair, e.g. "4,FIO".
func ParseSymbol(str string) (Symbol, error) {
	i := strings.IndexByte(str, ',')
	if i < 0 {
		return Symbol{}, errors.InvalidSymbol.WithFormat("symbol %q is missing a precision", str)
	}
	p, err := strconv.ParseUint(str[:i], 10, 8)
	if err != nil {
		return Symbol{}, errors.InvalidSymbol.WithFormat("symbol %q has a bad precision: %w", str, err)
	}
	sym := Symbol{Precision: uint8(p), Code: str[i+1:]}
	if !sym.IsValid() {
		return Symbol{}, errors.InvalidSymbol.WithFormat("symbol %q is not valid", str)
	}
	return sym, nil
}
