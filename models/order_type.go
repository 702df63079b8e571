package models

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OrderType is the canonical (upper-case) operation requested by a
// transaction.
type OrderType string

const (
	// OrderCheck requests a new checkbook.
	OrderCheck OrderType = "CHECK"
	// OrderStatement requests the monthly account statement.
	OrderStatement OrderType = "STMT"
)

// ParseOrderType upper-cases raw and reports whether it names a known
// order type. No trimming is applied: " check" is not a valid order.
func ParseOrderType(raw string) (OrderType, bool) {
	// cases.Caser keeps state between calls, so it is not shared
	order := OrderType(cases.Upper(language.Und).String(raw))

	switch order {
	case OrderCheck, OrderStatement:
		return order, true
	default:
		return order, false
	}
}

// Description returns the human-readable operation name shown to the user
// after a request is accepted.
func (o OrderType) Description() string {
	switch o {
	case OrderCheck:
		return "Checkbook request"
	case OrderStatement:
		return "Monthly account statement request"
	default:
		return ""
	}
}
