// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var mOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tokencore",
	Subsystem: "chain",
	Name:      "operations_total",
	Help:      "Number of ledger operations by outcome",
}, []string{"operation", "result"})
