package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	request "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/request"
	response "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/response"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"
	"github.com/sperry-entelech/entelech-sales-process-automation/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payment configurations and
// transactions.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// SetupPayment creates the payment configuration for a fully executed
// contract and issues the first invoice.
func (h *PaymentHandler) SetupPayment(c *gin.Context) {
	contractID := c.Param("id")
	log.Printf("[payment][handler] setup start contract_id=%s", contractID)

	cfg, err := h.usecase.SetupPayment(c.Request.Context(), contractID)
	if err != nil {
		log.Printf("[payment][handler] setup failed contract_id=%s err=%v", contractID, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] setup success contract_id=%s config_id=%s total=%s", contractID, cfg.ID, cfg.TotalAmount)

	c.JSON(http.StatusCreated, response.FromPaymentConfiguration(cfg))
}

// RecordPayment records a received milestone payment through the payment
// gateway.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	configID := c.Param("id")

	var payload request.MilestonePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	gatewayPayload := payload.GatewayPayload
	if len(gatewayPayload) == 0 {
		gatewayPayload = json.RawMessage("{}")
	}
	log.Printf("[payment][handler] record start config_id=%s milestone=%s", configID, payload.ResolveMilestoneName())

	tx, err := h.usecase.RecordMilestonePayment(c.Request.Context(), configID, payload.ResolveMilestoneName(), gatewayPayload)
	if err != nil {
		log.Printf("[payment][handler] record failed config_id=%s err=%v", configID, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] record success config_id=%s transaction_id=%s status=%s", configID, tx.ID, tx.Status)

	c.JSON(http.StatusCreated, response.FromPaymentTransaction(tx))
}

// ListTransactions returns all invoices and payments under a configuration.
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	configID := c.Param("id")

	txs, err := h.usecase.ListTransactions(c.Request.Context(), configID)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentTransactions(txs))
}
