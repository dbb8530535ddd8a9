package handlers

import (
	"log"
	"net/http"

	request "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/request"
	response "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/response"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"
	"github.com/sperry-entelech/entelech-sales-process-automation/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid discovery call payload", http.StatusBadRequest)

// IntakeHandler handles HTTP requests for discovery call intakes.

type IntakeHandler struct {
	usecase usecase.IQualificationUseCase
}

func NewIntakeHandler(uc usecase.IQualificationUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

// CreateIntake scores a discovery call and persists the immutable intake
// record. It does not advance the pipeline; POST /workflow does that.
func (h *IntakeHandler) CreateIntake(c *gin.Context) {
	var payload request.DiscoveryCallRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.ScoreAndRecordIntake(c.Request.Context(), payload.ResolveProspectID(), payload.ToIntakeRecord())
	if err != nil {
		log.Printf("[intake][handler] create failed company=%s err=%v", payload.CompanyName, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[intake][handler] create success intake_id=%s overall_score=%d status=%s",
		rec.ID, rec.Qualification.OverallScore, rec.Qualification.Status)

	c.JSON(http.StatusCreated, response.FromIntake(rec))
}

// GetIntake returns a scored intake by id.
func (h *IntakeHandler) GetIntake(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntake(rec))
}
