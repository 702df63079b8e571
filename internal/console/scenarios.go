package console

import "github.com/MKhiriev/go-bank-validator/models"

// Scenario is a named, predefined transaction request.
type Scenario struct {
	Name    string
	Request models.TransactionRequest
}

// DefaultScenarios returns the demonstration set printed before any
// interactive input: the happy path, a rejected branch region, weak PINs and
// order value edge cases.
func DefaultScenarios() []Scenario {
	base := models.TransactionRequest{
		BankCode:      "001",
		BranchCode:    "N001",
		AccountNumber: "1234567890",
		PersonalKey:   "951753",
		OrderValue:    models.Order("CHECK"),
	}

	with := func(mutate func(r *models.TransactionRequest)) models.TransactionRequest {
		r := base
		mutate(&r)
		return r
	}

	return []Scenario{
		{Name: "Valid Transaction (Happy Path)", Request: base},
		{Name: "Invalid Branch Region (Logic Error)", Request: with(func(r *models.TransactionRequest) { r.BranchCode = "Z999" })},
		{Name: "Weak PIN (Security Alert)", Request: with(func(r *models.TransactionRequest) { r.PersonalKey = "123456" })},
		{Name: "Repeated Digit PIN (Security Alert)", Request: with(func(r *models.TransactionRequest) { r.PersonalKey = "888888" })},
		{Name: "Lowercase Order Value", Request: with(func(r *models.TransactionRequest) { r.OrderValue = models.Order("check") })},
		{Name: "Missing Order Value", Request: with(func(r *models.TransactionRequest) { r.OrderValue = nil })},
	}
}
