// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/rs/zerolog"
)

// TransactionRequest carries the raw, unvalidated fields of a banking
// operation request exactly as the user or an upstream system typed them.
//
// Values are never normalised in place: validators read the fields and report
// problems, the request itself stays untouched.
type TransactionRequest struct {
	// BankCode identifies the bank. Expected: 3 digits (e.g. "001").
	BankCode string `json:"bank_code"`

	// BranchCode identifies the branch: a region letter followed by
	// 3 digits (e.g. "N001").
	BranchCode string `json:"branch_code"`

	// AccountNumber is the customer account. Expected: 10 digits.
	AccountNumber string `json:"account_number"`

	// PersonalKey is the 6-digit customer PIN. It must never be logged
	// or echoed back in clear text.
	PersonalKey string `json:"personal_key"`

	// OrderValue is the requested operation, "CHECK" or "STMT" in any case.
	// nil means the order was not provided; a missing or null JSON key
	// decodes to nil, while "" is a provided but invalid order.
	OrderValue *string `json:"order_value"`
}

// Order returns a pointer to v for use as [TransactionRequest.OrderValue].
func Order(v string) *string {
	return &v
}

// Order returns the order value, or "" when it was not provided.
func (r TransactionRequest) Order() string {
	if r.OrderValue == nil {
		return ""
	}
	return *r.OrderValue
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]. The personal
// key is always replaced by a mask of the same length.
func (r TransactionRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("bank_code", r.BankCode).
		Str("branch_code", r.BranchCode).
		Str("account_number", r.AccountNumber).
		Str("personal_key", MaskSecret(r.PersonalKey))

	if r.OrderValue != nil {
		e.Str("order_value", *r.OrderValue)
	}
}

// MaskSecret returns a string of '*' with the same rune count as s.
func MaskSecret(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}
