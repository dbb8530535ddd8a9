package handlers

import (
	"log"
	"net/http"

	request "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/request"
	response "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/response"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler handles the pipeline orchestration endpoints.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// ProcessDiscoveryCall runs the discovery stage end to end: it scores the
// call and, when the prospect qualifies, generates the statement of work in
// the same request.
func (h *WorkflowHandler) ProcessDiscoveryCall(c *gin.Context) {
	var payload request.DiscoveryCallRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] discovery start company=%s", payload.CompanyName)

	intake, proposal, err := h.usecase.ProcessDiscoveryCall(c.Request.Context(), payload.ResolveProspectID(), payload.ToIntakeRecord())
	if err != nil {
		log.Printf("[workflow][handler] discovery failed company=%s err=%v", payload.CompanyName, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if proposal != nil {
		log.Printf("[workflow][handler] discovery success intake_id=%s proposal_id=%s", intake.ID, proposal.ID)
	} else {
		log.Printf("[workflow][handler] discovery success intake_id=%s status=%s no proposal", intake.ID, intake.Qualification.Status)
	}

	c.JSON(http.StatusCreated, response.FromDiscoveryOutcome(intake, proposal))
}

// GetWorkflowStatus returns recent audit ledger entries, optionally
// filtered by process type and status.
func (h *WorkflowHandler) GetWorkflowStatus(c *gin.Context) {
	processType := entities.AuditProcessType(c.Query("process_type"))
	status := c.Query("status")

	events, err := h.usecase.GetWorkflowStatus(c.Request.Context(), processType, status)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditEvents(events))
}
