package handlers

import (
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

func TestProposalHandler_GenerateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("intake not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().
			GenerateFromIntake(gomock.Any(), "missing").
			Return(entities.Proposal{}, usecase.NewNotFoundError("intake", "missing"))
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id", h.GenerateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("proposal already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().
			GenerateFromIntake(gomock.Any(), "intake-1").
			Return(entities.Proposal{}, usecase.ErrProposalExists)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id", h.GenerateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/intake-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "PROPOSAL_ALREADY_EXISTS" {
			t.Fatalf("expected PROPOSAL_ALREADY_EXISTS, got %s", body["code"])
		}
	})

	t.Run("generate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().
			GenerateFromIntake(gomock.Any(), "intake-1").
			Return(entities.Proposal{ID: "proposal-1", IntakeID: "intake-1", Status: entities.ProposalDraft}, nil)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id", h.GenerateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/intake-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestProposalHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().
			Approve(gomock.Any(), "proposal-1").
			Return(entities.Proposal{ID: "proposal-1", Status: entities.ProposalApproved}, nil)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/approve", h.ApproveProposal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/proposal-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["status"] != "approved" {
			t.Fatalf("expected approved status, got %v", body["status"])
		}
	})

	t.Run("wrong state is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().
			Send(gomock.Any(), "proposal-1").
			Return(entities.Proposal{}, usecase.NewStateConflictError("proposal", "proposal-1", "draft", "review"))
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/send", h.SendProposal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/proposal-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "STATE_CONFLICT" {
			t.Fatalf("expected STATE_CONFLICT, got %s", body["code"])
		}
	})

	t.Run("invalid proposal id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().
			SubmitForReview(gomock.Any(), gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrInvalidProposalID)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/submit", h.SubmitProposal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/%20/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
