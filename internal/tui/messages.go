package tui

import "github.com/MKhiriev/go-bank-validator/models"

type validatedMsg struct {
	request models.TransactionRequest
	result  models.ValidationResult
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
