package models

// ValidationResult is the outcome of validating one [TransactionRequest].
//
// Errors lists every triggered rule message in rule-check order. An empty
// list is the only acceptance signal; there is no separate status flag.
type ValidationResult struct {
	// Errors holds human-readable rule violations. Never nil after
	// validation so that it encodes as [] in JSON.
	Errors []string `json:"errors"`

	// Operation describes the accepted operation (e.g. "Checkbook request").
	// Empty when the request is rejected.
	Operation string `json:"operation,omitempty"`
}

// Accepted reports whether no rule was violated.
func (r ValidationResult) Accepted() bool {
	return len(r.Errors) == 0
}

// RegionsResponse is the payload of the regions endpoint.
type RegionsResponse struct {
	Regions RegionSet `json:"regions"`
}
