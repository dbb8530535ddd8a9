package usecase

import (
	"errors"
	"fmt"
)

// The pipeline surfaces four error kinds: validation failures rejected
// before any write, missing entities, status transitions requested from a
// state that does not permit them, and violated internal invariants. Every
// stage is all-or-nothing; on any of these, nothing was persisted.

var (
	ErrInvalidIntakeID    = errors.New("invalid intake id")
	ErrInvalidProposalID  = errors.New("invalid proposal id")
	ErrInvalidContractID  = errors.New("invalid contract id")
	ErrInvalidConfigID    = errors.New("invalid payment config id")
	ErrProposalExists     = errors.New("proposal already exists for this intake")
	ErrContractExists     = errors.New("contract already exists for this proposal")
	ErrPaymentSetupExists = errors.New("payment configuration already exists for this contract")
	ErrKickoffExists      = errors.New("kickoff already exists for this contract")
)

// ValidationError rejects malformed intake input before scoring.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a referenced entity id that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// StateConflictError reports an operation requested from a status that does
// not permit it, including a lost compare-and-set race.
type StateConflictError struct {
	Entity   string
	ID       string
	Current  string
	Required string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s %s is %q, operation requires %q", e.Entity, e.ID, e.Current, e.Required)
}

func NewStateConflictError(entity, id, current, required string) error {
	return &StateConflictError{Entity: entity, ID: id, Current: current, Required: required}
}

// ComputationError reports a violated internal invariant, e.g. an unmatched
// template placeholder.
type ComputationError struct {
	Op     string
	Detail string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func NewComputationError(op, detail string) error {
	return &ComputationError{Op: op, Detail: detail}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsStateConflict(err error) bool {
	var sc *StateConflictError
	return errors.As(err, &sc)
}

func IsComputation(err error) bool {
	var ce *ComputationError
	return errors.As(err, &ce)
}
