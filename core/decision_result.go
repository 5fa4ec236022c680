package core

// DecisionResult represents the outcome of a business decision in a Decide
// function: either an event to append, or a domain error to surface to the
// caller with nothing appended.
//
// DecisionResult should only be constructed with the factory methods
// SuccessDecision(event) and ErrorDecision(err).
type DecisionResult struct {
	Event DomainEvent // nil for error decisions
	Err   error       // nil for success decisions
}

// SuccessDecision creates a DecisionResult indicating a successful state
// change with an event to append.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{Event: event}
}

// ErrorDecision creates a DecisionResult indicating a precondition violation.
// No event is appended; the error is returned to the caller as-is.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{Err: err}
}

// HasEventToAppend returns true if there is an event to append to the event store.
func (r DecisionResult) HasEventToAppend() bool {
	return r.Err == nil && r.Event != nil
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	return r.Err
}
