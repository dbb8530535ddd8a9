package handlers

import (
	"log"
	"net/http"

	response "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/response"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// KickoffHandler handles HTTP requests for project kickoffs.

type KickoffHandler struct {
	usecase usecase.IKickoffUseCase
}

func NewKickoffHandler(uc usecase.IKickoffUseCase) *KickoffHandler {
	return &KickoffHandler{usecase: uc}
}

// TriggerKickoff attempts to initiate the project for a contract. Until the
// first milestone payment completes the trigger is a no-op and the response
// is 202 so callers can retry the same request later.
func (h *KickoffHandler) TriggerKickoff(c *gin.Context) {
	contractID := c.Param("id")
	log.Printf("[kickoff][handler] trigger start contract_id=%s", contractID)

	rec, triggered, err := h.usecase.TriggerKickoff(c.Request.Context(), contractID)
	if err != nil {
		log.Printf("[kickoff][handler] trigger failed contract_id=%s err=%v", contractID, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !triggered {
		log.Printf("[kickoff][handler] trigger deferred contract_id=%s", contractID)
		c.JSON(http.StatusAccepted, response.KickoffDeferredResponse{
			ContractID: contractID,
			Triggered:  false,
			Reason:     "no completed payment yet",
		})
		return
	}
	log.Printf("[kickoff][handler] trigger success contract_id=%s project_code=%s", contractID, rec.ProjectCode)

	c.JSON(http.StatusCreated, response.FromKickoff(rec))
}

func (h *KickoffHandler) GetKickoff(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromKickoff(rec))
}
