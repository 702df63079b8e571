// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-bank-validator/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldBankCode targets the 3-digit bank identifier.
	FieldBankCode = "bank_code"

	// FieldBranchCode targets the region-prefixed branch identifier.
	FieldBranchCode = "branch_code"

	// FieldAccountNumber targets the 10-digit customer account.
	FieldAccountNumber = "account_number"

	// FieldPersonalKey targets the 6-digit PIN, including the weak PIN
	// heuristic.
	FieldPersonalKey = "personal_key"

	// FieldOrderValue targets the requested operation (CHECK or STMT).
	FieldOrderValue = "order_value"
)

// defaultFields is the canonical rule order. Messages are always reported
// in this order when no explicit scope is given.
var defaultFields = []string{
	FieldBankCode,
	FieldBranchCode,
	FieldAccountNumber,
	FieldPersonalKey,
	FieldOrderValue,
}

// Validate runs every transaction rule against req and returns the
// triggered messages in rule order. An empty (non-nil) slice means the
// request is accepted.
//
// Validate is pure: it reads req and regions and touches nothing else.
func Validate(req models.TransactionRequest, regions models.RegionSet) []string {
	messages := make([]string, 0, len(defaultFields))
	for _, f := range defaultFields {
		messages = appendFieldMessages(messages, req, regions, f)
	}
	return messages
}

// TransactionValidator implements the Validator interface for
// models.TransactionRequest against a fixed region whitelist.
type TransactionValidator struct {
	regions models.RegionSet
}

// NewTransactionValidator constructs a TransactionValidator bound to
// regions and returns it as the Validator interface.
func NewTransactionValidator(regions models.RegionSet) Validator {
	return &TransactionValidator{regions: regions}
}

// Validate dispatches on the dynamic type of obj. Both
// models.TransactionRequest and *models.TransactionRequest are accepted;
// anything else yields ErrUnsupportedType.
//
// Optional fields restrict validation to the named subset, checked in the
// order given. When omitted, all fields are validated in canonical order.
//
// A rejected request produces a ValidationErrors value holding every
// triggered message. Unknown field names yield ErrUnknownField before any
// rule runs.
func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransactionRequest:
		return v.validateTransactionRequest(ctx, value, fields...)
	case *models.TransactionRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTransactionRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TransactionValidator) validateTransactionRequest(_ context.Context, req models.TransactionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultFields
	}

	for _, f := range fields {
		if !isKnownField(f) {
			return ErrUnknownField
		}
	}

	var messages ValidationErrors
	for _, f := range fields {
		messages = appendFieldMessages(messages, req, v.regions, f)
	}

	if len(messages) == 0 {
		return nil
	}
	return messages
}

func appendFieldMessages(messages []string, req models.TransactionRequest, regions models.RegionSet, field string) []string {
	switch field {
	case FieldBankCode:
		if !isDigits(req.BankCode, bankCodeLength) {
			messages = append(messages, MsgInvalidBankCode)
		}
	case FieldBranchCode:
		if !isBranchCode(req.BranchCode, regions) {
			messages = append(messages, InvalidBranchCodeMessage(regions.String()))
		}
	case FieldAccountNumber:
		if !isDigits(req.AccountNumber, accountNumberLength) {
			messages = append(messages, MsgInvalidAccountNumber)
		}
	case FieldPersonalKey:
		switch {
		case !isDigits(req.PersonalKey, personalKeyLength):
			messages = append(messages, MsgInvalidPersonalKey)
		case IsWeakPIN(req.PersonalKey):
			messages = append(messages, MsgWeakPersonalKey)
		}
	case FieldOrderValue:
		if req.OrderValue == nil {
			messages = append(messages, MsgOrderValueRequired)
		} else if _, ok := models.ParseOrderType(*req.OrderValue); !ok {
			messages = append(messages, MsgInvalidOrderValue)
		}
	}
	return messages
}

func isKnownField(field string) bool {
	for _, f := range defaultFields {
		if f == field {
			return true
		}
	}
	return false
}
