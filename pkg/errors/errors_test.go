// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusMatching(t *testing.T) {
	err := InsufficientBalance.WithFormat("%s has an insufficient balance", "alice")
	require.True(t, Is(err, InsufficientBalance))
	require.False(t, Is(err, NotFound))
	require.Equal(t, InsufficientBalance, Code(err))
	require.Equal(t, "alice has an insufficient balance", err.Error())
}

func TestStatusMatchesThroughWrapping(t *testing.T) {
	err := NotFound.With("no such token")
	wrapped := fmt.Errorf("lookup: %w", err)
	require.True(t, Is(wrapped, NotFound))
	require.Equal(t, NotFound, Code(wrapped))
}

func TestWrapKeepsKnownStatus(t *testing.T) {
	inner := SupplyExceeded.With("quantity exceeds available supply")
	outer := InternalError.Wrap(inner)
	require.Equal(t, SupplyExceeded, Code(outer))

	require.Nil(t, InternalError.Wrap(nil))
}

func TestClassPredicates(t *testing.T) {
	require.True(t, InsufficientBalance.IsClientError())
	require.False(t, InsufficientBalance.IsServerError())
	require.True(t, InternalOverflow.IsServerError())
	require.True(t, OK.Success())
}
