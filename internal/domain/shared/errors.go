package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// ValidationReason classifies why an order failed validation. The reason is
// carried into the turn report so presentation layers can explain the drop.
type ValidationReason string

const (
	ReasonMissingComponent      ValidationReason = "MISSING_COMPONENT"
	ReasonInhibited             ValidationReason = "INHIBITED"
	ReasonIllegalTarget         ValidationReason = "ILLEGAL_TARGET"
	ReasonInsufficientResources ValidationReason = "INSUFFICIENT_RESOURCES"
)

// ValidationError means an order cannot be executed in the current unit or
// world state. It is recovered locally: the order is dropped and reported.
type ValidationError struct {
	*DomainError
	Reason ValidationReason
}

func NewValidationError(reason ValidationReason, message string) *ValidationError {
	return &ValidationError{
		DomainError: &DomainError{Message: message},
		Reason:      reason,
	}
}

func NewMissingComponentError(component string) *ValidationError {
	return NewValidationError(ReasonMissingComponent,
		fmt.Sprintf("required component not installed: %s", component))
}

func NewInhibitedError(sector string) *ValidationError {
	return NewValidationError(ReasonInhibited,
		fmt.Sprintf("destination %s is covered by a hostile inhibition field", sector))
}

func NewIllegalTargetError(message string) *ValidationError {
	return NewValidationError(ReasonIllegalTarget, message)
}

func NewInsufficientResourcesError(required, available int64, resource string) *ValidationError {
	return NewValidationError(ReasonInsufficientResources,
		fmt.Sprintf("insufficient %s: need %d, have %d", resource, required, available))
}

// PathfindingReason classifies why the planner could not produce a plan.
type PathfindingReason string

const (
	ReasonNoPath               PathfindingReason = "NO_PATH"
	ReasonSearchBudgetExceeded PathfindingReason = "SEARCH_BUDGET_EXCEEDED"
)

// PathfindingError means the planner could not produce a legal plan. It is
// recovered locally and surfaces as a Blocked/Failed outcome for the order.
type PathfindingError struct {
	*DomainError
	Reason PathfindingReason
}

func NewNoPathError(from, to string) *PathfindingError {
	return &PathfindingError{
		DomainError: &DomainError{Message: fmt.Sprintf("no path from %s to %s", from, to)},
		Reason:      ReasonNoPath,
	}
}

func NewSearchBudgetExceededError(budget int) *PathfindingError {
	return &PathfindingError{
		DomainError: &DomainError{Message: fmt.Sprintf("graph search exceeded node budget of %d", budget)},
		Reason:      ReasonSearchBudgetExceeded,
	}
}

// InvariantViolationError marks a broken engine invariant (negative resource,
// out-of-bounds coordinate). It is a programming error: the turn step must
// abort rather than continue with corrupted state.
type InvariantViolationError struct {
	*DomainError
}

func NewInvariantViolationError(message string) *InvariantViolationError {
	return &InvariantViolationError{DomainError: &DomainError{Message: "invariant violation: " + message}}
}

// InvalidUnitDataError marks a unit constructed with inconsistent fields.
type InvalidUnitDataError struct {
	*DomainError
}

func NewInvalidUnitDataError(message string) *InvalidUnitDataError {
	return &InvalidUnitDataError{DomainError: &DomainError{Message: message}}
}
