package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/handlers/mocks"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_SetupPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("contract not executed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			SetupPayment(gomock.Any(), "contract-1").
			Return(entities.PaymentConfiguration{}, usecase.NewStateConflictError("contract", "contract-1", "draft", "fully_executed"))
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:id", h.SetupPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/contract-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("setup already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			SetupPayment(gomock.Any(), "contract-1").
			Return(entities.PaymentConfiguration{}, usecase.ErrPaymentSetupExists)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:id", h.SetupPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/contract-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "PAYMENT_SETUP_ALREADY_EXISTS" {
			t.Fatalf("expected PAYMENT_SETUP_ALREADY_EXISTS, got %s", body["code"])
		}
	})

	t.Run("setup success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			SetupPayment(gomock.Any(), "contract-1").
			Return(entities.PaymentConfiguration{ID: "cfg-1", ContractID: "contract-1", Provider: "mercadopago"}, nil)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:id", h.SetupPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/contract-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:id/transactions", h.RecordPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cfg-1/transactions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown milestone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			RecordMilestonePayment(gomock.Any(), "cfg-1", "Bonus Round", gomock.Any()).
			Return(entities.PaymentTransaction{}, usecase.NewValidationError("milestone", "is not part of the payment schedule"))
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:id/transactions", h.RecordPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cfg-1/transactions",
			bytes.NewBufferString(`{"milestone_name":"Bonus Round"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("record success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			RecordMilestonePayment(gomock.Any(), "cfg-1", "Project Start", gomock.Any()).
			Return(entities.PaymentTransaction{ID: "tx-1", ConfigID: "cfg-1", Status: entities.TransactionCompleted}, nil)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:id/transactions", h.RecordPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cfg-1/transactions",
			bytes.NewBufferString(`{"milestone_name":"Project Start","gateway_payload":{"token":"card-token"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	uc.EXPECT().
		ListTransactions(gomock.Any(), "cfg-1").
		Return([]entities.PaymentTransaction{{ID: "tx-1"}, {ID: "tx-2"}}, nil)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments/:id/transactions", h.ListTransactions)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/cfg-1/transactions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(body))
	}
}
