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

func TestKickoffHandler_TriggerKickoff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deferred while unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKickoffUseCase(ctrl)
		uc.EXPECT().
			TriggerKickoff(gomock.Any(), "contract-1").
			Return(entities.KickoffRecord{}, false, nil)
		h := NewKickoffHandler(uc)

		r := gin.New()
		r.POST("/v1/kickoffs/:id", h.TriggerKickoff)

		req := httptest.NewRequest(http.MethodPost, "/v1/kickoffs/contract-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["triggered"] != false {
			t.Fatalf("expected triggered=false, got %v", body["triggered"])
		}
		if body["reason"] != "no completed payment yet" {
			t.Fatalf("expected deferral reason, got %v", body["reason"])
		}
	})

	t.Run("already kicked off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKickoffUseCase(ctrl)
		uc.EXPECT().
			TriggerKickoff(gomock.Any(), "contract-1").
			Return(entities.KickoffRecord{}, false, usecase.ErrKickoffExists)
		h := NewKickoffHandler(uc)

		r := gin.New()
		r.POST("/v1/kickoffs/:id", h.TriggerKickoff)

		req := httptest.NewRequest(http.MethodPost, "/v1/kickoffs/contract-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "KICKOFF_ALREADY_EXISTS" {
			t.Fatalf("expected KICKOFF_ALREADY_EXISTS, got %s", body["code"])
		}
	})

	t.Run("trigger success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKickoffUseCase(ctrl)
		uc.EXPECT().
			TriggerKickoff(gomock.Any(), "contract-1").
			Return(entities.KickoffRecord{ID: "kickoff-1", ContractID: "contract-1", ProjectCode: "ENT2603009"}, true, nil)
		h := NewKickoffHandler(uc)

		r := gin.New()
		r.POST("/v1/kickoffs/:id", h.TriggerKickoff)

		req := httptest.NewRequest(http.MethodPost, "/v1/kickoffs/contract-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["project_code"] != "ENT2603009" {
			t.Fatalf("expected project code, got %v", body["project_code"])
		}
	})
}

func TestKickoffHandler_GetKickoff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIKickoffUseCase(ctrl)
	uc.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(entities.KickoffRecord{}, usecase.NewNotFoundError("kickoff", "missing"))
	h := NewKickoffHandler(uc)

	r := gin.New()
	r.GET("/v1/kickoffs/:id", h.GetKickoff)

	req := httptest.NewRequest(http.MethodGet, "/v1/kickoffs/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
