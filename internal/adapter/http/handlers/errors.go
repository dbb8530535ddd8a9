package handlers

import (
	"errors"
	"net/http"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"
	"github.com/sperry-entelech/entelech-sales-process-automation/pkg"
)

// mapPipelineError translates use case errors into the transport error
// shape. All pipeline stages share one taxonomy, so one mapping serves every
// handler.
func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIntakeID),
		errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidConfigID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case usecase.IsValidation(err):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalExists):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_EXISTS", "Proposal already exists for this intake", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractExists):
		return pkg.NewDomainErrorSimple("CONTRACT_ALREADY_EXISTS", "Contract already exists for this proposal", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentSetupExists):
		return pkg.NewDomainErrorSimple("PAYMENT_SETUP_ALREADY_EXISTS", "Payment configuration already exists for this contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrKickoffExists):
		return pkg.NewDomainErrorSimple("KICKOFF_ALREADY_EXISTS", "Kickoff already exists for this contract", http.StatusConflict)
	case usecase.IsNotFound(err):
		return pkg.NewDomainErrorSimple("NOT_FOUND", err.Error(), http.StatusNotFound)
	case usecase.IsStateConflict(err):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", err.Error(), http.StatusConflict)
	case usecase.IsComputation(err):
		return pkg.NewDomainError("COMPUTATION_ERROR", "Generation failed, nothing was persisted", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
