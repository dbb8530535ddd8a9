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

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles HTTP requests for contracts.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// GenerateContract renders a contract for an approved proposal from the
// requested template.
func (h *ContractHandler) GenerateContract(c *gin.Context) {
	proposalID := c.Param("id")

	var payload request.ContractGenerationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] generate start proposal_id=%s template_id=%s", proposalID, payload.ResolveTemplateID())

	contract, err := h.usecase.GenerateFromProposal(c.Request.Context(), proposalID, payload.ResolveTemplateID())
	if err != nil {
		log.Printf("[contract][handler] generate failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] generate success proposal_id=%s contract_number=%s", proposalID, contract.ContractNumber)

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

// SendContract hands the contract to the signature gateway and marks it
// sent.
func (h *ContractHandler) SendContract(c *gin.Context) {
	id := c.Param("id")

	contract, err := h.usecase.SendForSignature(c.Request.Context(), id)
	if err != nil {
		log.Printf("[contract][handler] send failed contract_id=%s err=%v", id, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] send success contract_id=%s envelope_id=%s", id, contract.SignatureEnvelopeID)

	c.JSON(http.StatusOK, response.FromContract(contract))
}

// ExecuteContract records that all parties signed.
func (h *ContractHandler) ExecuteContract(c *gin.Context) {
	id := c.Param("id")

	contract, err := h.usecase.MarkExecuted(c.Request.Context(), id)
	if err != nil {
		log.Printf("[contract][handler] execute failed contract_id=%s err=%v", id, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] execute success contract_id=%s contract_number=%s", id, contract.ContractNumber)

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}
