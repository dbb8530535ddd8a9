package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/handlers/mocks"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkflowHandler_ProcessDiscoveryCall(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := `{
		"prospect_id": "prospect-1",
		"company_name": "Acme Logistics",
		"primary_contact_name": "Dana Reed",
		"primary_contact_email": "dana.reed@acme.example",
		"weekly_time_waste_hours": 25,
		"cost_of_inefficiency": 120000
	}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/workflow", h.ProcessDiscoveryCall)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("qualified call returns intake and proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		intake := entities.IntakeRecord{
			ID:            "intake-1",
			Qualification: entities.QualificationResult{OverallScore: 85, Status: entities.QualificationQualified},
		}
		proposal := &entities.Proposal{ID: "proposal-1", IntakeID: "intake-1", Status: entities.ProposalDraft}
		uc.EXPECT().
			ProcessDiscoveryCall(gomock.Any(), "prospect-1", gomock.Any()).
			Return(intake, proposal, nil)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/workflow", h.ProcessDiscoveryCall)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["proposal"] == nil {
			t.Fatalf("expected proposal in response, got %v", body)
		}
	})

	t.Run("nurture call returns intake only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		intake := entities.IntakeRecord{
			ID:            "intake-2",
			Qualification: entities.QualificationResult{OverallScore: 60, Status: entities.QualificationNurture},
		}
		uc.EXPECT().
			ProcessDiscoveryCall(gomock.Any(), "prospect-1", gomock.Any()).
			Return(intake, nil, nil)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/workflow", h.ProcessDiscoveryCall)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["proposal"] != nil {
			t.Fatalf("expected no proposal for nurture, got %v", body["proposal"])
		}
	})
}

func TestWorkflowHandler_GetWorkflowStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkflowUseCase(ctrl)
	uc.EXPECT().
		GetWorkflowStatus(gomock.Any(), entities.ProcessDiscoveryToSOW, "completed").
		Return([]entities.AuditEvent{{ID: "ev-1", ProcessType: entities.ProcessDiscoveryToSOW}}, nil)
	h := NewWorkflowHandler(uc)

	r := gin.New()
	r.GET("/v1/workflow", h.GetWorkflowStatus)

	req := httptest.NewRequest(http.MethodGet, "/v1/workflow?process_type=discovery_to_sow&status=completed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
