package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Rule violation messages. They are part of the public contract: clients
// show them to end users as-is.
const (
	MsgInvalidBankCode      = "Bank Code must be exactly 3 digits."
	MsgInvalidAccountNumber = "Account Number must be exactly 10 digits."
	MsgInvalidPersonalKey   = "Personal Key must be exactly 6 digits."
	MsgWeakPersonalKey      = "Security Alert: Weak PIN detected (Sequence or Repeated numbers)."
	MsgOrderValueRequired   = "Order Value is required."
	MsgInvalidOrderValue    = "Invalid Order. Allowed values: 'CHECK' or 'STMT'."

	msgInvalidBranchCodeFormat = "Invalid Branch Code. Format must be Region (%s) + 3 Digits."
)

// InvalidBranchCodeMessage renders the branch code violation for the given
// region list, e.g. "N,S,E,O".
func InvalidBranchCodeMessage(regions string) string {
	return fmt.Sprintf(msgInvalidBranchCodeFormat, regions)
}

// ValidationErrors is the ordered list of rule messages returned by
// [TransactionValidator.Validate] when a request is rejected.
type ValidationErrors []string

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(ve, "; ")
}

// Messages returns the rule messages as a plain slice.
func (ve ValidationErrors) Messages() []string {
	out := make([]string, len(ve))
	copy(out, ve)
	return out
}

// ExtractMessages returns the rule messages carried by err, or nil when err
// is not (and does not wrap) a [ValidationErrors].
func ExtractMessages(err error) []string {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve.Messages()
	}
	return nil
}
