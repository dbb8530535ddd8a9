package handlers

import (
	"context"
	"log"
	"net/http"

	response "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/response"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles HTTP requests for statements of work.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// GenerateProposal builds the priced statement of work for a scored intake.
func (h *ProposalHandler) GenerateProposal(c *gin.Context) {
	intakeID := c.Param("id")
	log.Printf("[proposal][handler] generate start intake_id=%s", intakeID)

	proposal, err := h.usecase.GenerateFromIntake(c.Request.Context(), intakeID)
	if err != nil {
		log.Printf("[proposal][handler] generate failed intake_id=%s err=%v", intakeID, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] generate success intake_id=%s proposal_id=%s total=%s",
		intakeID, proposal.ID, proposal.Pricing.TotalCost)

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	h.patchProposalStatus(c, "submit", h.usecase.SubmitForReview)
}

func (h *ProposalHandler) SendProposal(c *gin.Context) {
	h.patchProposalStatus(c, "send", h.usecase.Send)
}

func (h *ProposalHandler) ApproveProposal(c *gin.Context) {
	h.patchProposalStatus(c, "approve", h.usecase.Approve)
}

func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	h.patchProposalStatus(c, "reject", h.usecase.Reject)
}

func (h *ProposalHandler) patchProposalStatus(
	c *gin.Context,
	op string,
	updater func(ctx context.Context, id string) (entities.Proposal, error),
) {
	id := c.Param("id")

	proposal, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[proposal][handler] %s failed proposal_id=%s err=%v", op, id, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] %s success proposal_id=%s status=%s", op, id, proposal.Status)

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}
