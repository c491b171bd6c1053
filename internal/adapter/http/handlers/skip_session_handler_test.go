package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "skip_selector/internal/adapter/http/dto/response"
	"skip_selector/internal/adapter/http/handlers/mocks"
	"skip_selector/internal/domain/entities"
	"skip_selector/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testWaste = response.WasteInfo{Type: "Garden Waste", Description: "Green waste and landscaping materials"}

func newSkipRouter(h *SkipSessionHandler) *gin.Engine {
	r := gin.New()
	sessions := r.Group("/v1/skip-sessions")
	sessions.POST("", h.StartSession)
	sessions.GET("/:session_id", h.GetSession)
	sessions.DELETE("/:session_id", h.EndSession)
	sessions.POST("/:session_id/retry", h.Retry)
	sessions.PUT("/:session_id/price-filter", h.ApplyPriceFilter)
	sessions.DELETE("/:session_id/price-filter", h.ClearPriceFilter)
	sessions.POST("/:session_id/tax-mode/toggle", h.ToggleTaxMode)
	sessions.PUT("/:session_id/selection", h.SelectOffering)
	return r
}

func sampleSession() entities.BookingSession {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := entities.NewBookingSession("sess-1", entities.Location{Postcode: "NR32", Area: "Lowestoft"}, now)
	s.CompleteLoad([]entities.Offering{{
		ID:               17933,
		Size:             4,
		HirePeriodDays:   14,
		PriceBeforeVAT:   decimal.NewFromInt(200),
		VAT:              decimal.NewFromInt(40),
		AllowedOnRoad:    true,
		AllowsHeavyWaste: true,
	}}, now)
	return s
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSkipSessionHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().StartSession(gomock.Any()).Return(sampleSession(), nil)

		w := doRequest(r, http.MethodPost, "/v1/skip-sessions", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.SkipPageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.SessionID != "sess-1" || body.Status != "success" || len(body.Offerings) != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Offerings[0].DisplayPriceLabel != "£240.00" || body.WasteType != "Garden Waste" {
			t.Fatalf("unexpected rendering: %+v", body)
		}
	})

	t.Run("fetch failure is still created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		s := entities.NewBookingSession("sess-1", entities.Location{}, time.Now())
		s.FailLoad(time.Now())
		uc.EXPECT().StartSession(gomock.Any()).Return(s, nil)

		w := doRequest(r, http.MethodPost, "/v1/skip-sessions", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.SkipPageResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Status != "failure" || body.FailureMessage != entities.FetchFailureMessage {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().StartSession(gomock.Any()).Return(entities.BookingSession{}, errors.New("db"))

		w := doRequest(r, http.MethodPost, "/v1/skip-sessions", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestSkipSessionHandler_SessionActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().GetSession(gomock.Any(), "missing").Return(entities.BookingSession{}, usecase.ErrSessionNotFound)

		w := doRequest(r, http.MethodGet, "/v1/skip-sessions/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SESSION_NOT_FOUND" {
			t.Fatalf("unexpected error body: %v", body)
		}
	})

	t.Run("retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().Retry(gomock.Any(), "sess-1").Return(sampleSession(), nil)

		w := doRequest(r, http.MethodPost, "/v1/skip-sessions/sess-1/retry", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("apply price filter passes raw text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().ApplyPriceFilter(gomock.Any(), "sess-1", "100", "abc").Return(sampleSession(), nil)

		w := doRequest(r, http.MethodPut, "/v1/skip-sessions/sess-1/price-filter", `{"min_price":"100","max_price":"abc"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("apply price filter accepts numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().ApplyPriceFilter(gomock.Any(), "sess-1", "100", "300").Return(sampleSession(), nil)

		w := doRequest(r, http.MethodPut, "/v1/skip-sessions/sess-1/price-filter", `{"min_price":100,"max_price":300}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("apply price filter odd values become no bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().ApplyPriceFilter(gomock.Any(), "sess-1", "", "").Return(sampleSession(), nil)

		w := doRequest(r, http.MethodPut, "/v1/skip-sessions/sess-1/price-filter", `{"min_price":null,"max_price":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("apply price filter invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		w := doRequest(r, http.MethodPut, "/v1/skip-sessions/sess-1/price-filter", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("clear price filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().ClearPriceFilter(gomock.Any(), "sess-1").Return(sampleSession(), nil)

		w := doRequest(r, http.MethodDelete, "/v1/skip-sessions/sess-1/price-filter", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("toggle tax mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		s := sampleSession()
		s.ToggleTaxMode(time.Now())
		uc.EXPECT().ToggleTaxMode(gomock.Any(), "sess-1").Return(s, nil)

		w := doRequest(r, http.MethodPost, "/v1/skip-sessions/sess-1/tax-mode/toggle", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.SkipPageResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.TaxMode != "exclude_vat" || body.Offerings[0].DisplayPrice != "200.00" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("select", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		s := sampleSession()
		s.Select(17933, time.Now())
		uc.EXPECT().SelectOffering(gomock.Any(), "sess-1", int64(17933)).Return(s, nil)

		w := doRequest(r, http.MethodPut, "/v1/skip-sessions/sess-1/selection", `{"offering_id":17933}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.SkipPageResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.CanContinue || body.Selected == nil || body.Selected.Summary != "4 Yard Skip - £240.00 (inc. VAT) for 14 days" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("select missing offering id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		w := doRequest(r, http.MethodPut, "/v1/skip-sessions/sess-1/selection", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("end session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().EndSession(gomock.Any(), "sess-1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/v1/skip-sessions/sess-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("end session invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISkipSelectionUseCase(ctrl)
		r := newSkipRouter(NewSkipSessionHandler(uc, testWaste))

		uc.EXPECT().EndSession(gomock.Any(), "sess-1").Return(usecase.ErrInvalidSessionID)

		w := doRequest(r, http.MethodDelete, "/v1/skip-sessions/sess-1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapSkipSessionError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidSessionID, http.StatusBadRequest},
		{usecase.ErrInvalidOfferingID, http.StatusBadRequest},
		{usecase.ErrSessionNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapSkipSessionError(tc.err).HTTPStatus; got != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got)
		}
	}
}
