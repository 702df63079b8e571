// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bank-validator/internal/app"
	"github.com/MKhiriev/go-bank-validator/models"
)

const indent = "   "

// EchoInput renders req on one line without the personal key.
func EchoInput(req models.TransactionRequest) string {
	return fmt.Sprintf("Input Data: [Bank:%s] [Branch:%s] [Acc:%s] [Order:%s]",
		req.BankCode, req.BranchCode, req.AccountNumber, req.Order())
}

// Report renders the verdict for req as printed by the console and copied
// by the TUI. The personal key never appears in the output.
func Report(req models.TransactionRequest, result models.ValidationResult) string {
	var b strings.Builder

	b.WriteString(indent)
	b.WriteString(EchoInput(req))
	b.WriteString("\n")

	if result.Accepted() {
		b.WriteString(indent)
		b.WriteString("[RESULT]: ")
		b.WriteString(app.MsgTransactionApproved)
		if result.Operation != "" {
			b.WriteString(" (")
			b.WriteString(result.Operation)
			b.WriteString(")")
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(indent)
	b.WriteString("[RESULT]: ")
	b.WriteString(app.MsgTransactionRejected)
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("Errors found:\n")
	for _, msg := range result.Errors {
		b.WriteString(indent)
		b.WriteString(" - ")
		b.WriteString(msg)
		b.WriteString("\n")
	}
	return b.String()
}

// ErrorReport renders a failure to reach a verdict for req.
func ErrorReport(req models.TransactionRequest, err error) string {
	return fmt.Sprintf("%s%s\n%s[ERROR]: %v\n", indent, EchoInput(req), indent, err)
}
