// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

// Status is a request status code. Codes follow the HTTP convention: 2xx is
// success, 4xx is a caller error, 5xx is an internal defect.
type Status uint64

const (
	OK           Status = 200
	Delivered    Status = 201
	BadRequest   Status = 400
	Unauthorized Status = 401
	NotFound     Status = 404
	Conflict     Status = 409

	AlreadyExists       Status = 450
	InvalidSymbol       Status = 451
	InvalidAmount       Status = 452
	InvalidMemo         Status = 453
	InvalidRecipient    Status = 454
	SupplyExceeded      Status = 455
	InsufficientBalance Status = 456

	UnknownError     Status = 500
	InternalError    Status = 501
	InternalOverflow Status = 502
)

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// IsClientError returns true if the status is a client error.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true if the status is a server error.
func (s Status) IsServerError() bool { return s >= 500 }

// Error implements error.
func (s Status) Error() string { return s.String() }

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Delivered:
		return "delivered"
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case AlreadyExists:
		return "already exists"
	case InvalidSymbol:
		return "invalid symbol"
	case InvalidAmount:
		return "invalid amount"
	case InvalidMemo:
		return "invalid memo"
	case InvalidRecipient:
		return "invalid recipient"
	case SupplyExceeded:
		return "supply exceeded"
	case InsufficientBalance:
		return "insufficient balance"
	case InternalError:
		return "internal error"
	case InternalOverflow:
		return "internal overflow"
	default:
		return "unknown error"
	}
}
