// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// AccountID names an account. Names are 1-12 characters of a-z, 1-5, and
// dots, and may not begin or end with a dot.
type AccountID string

// IsValid returns true if the name satisfies the account naming rules.
func (id AccountID) IsValid() bool {
	if len(id) == 0 || len(id) > 12 {
		return false
	}
	if id[0] == '.' || id[len(id)-1] == '.' {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '1' && c <= '5':
		case c == '.':
		default:
			return false
		}
	}
	return true
}

func (id AccountID) String() string { return string(id) }
