package update_business_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type MockHoursService struct {
	mock.Mock
}

func (m *MockHoursService) Set(ctx context.Context, req *models.SetHoursRequest) (*models.HoursResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.HoursResponse)
	return resp, args.Error(1)
}

func serve(h *Handler, userID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/businesses/{businessId}/hours", h.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/businesses/salon-1/hours", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &MockHoursService{}
	svc.On("Set", mock.Anything, &models.SetHoursRequest{
		UserID:     "salon-1",
		BusinessID: "salon-1",
		OpenTime:   ptr.Ptr("9:00 AM"),
	}).Return(&models.HoursResponse{
		BusinessID: "salon-1",
		OpenTime:   ptr.Ptr("9:00 AM"),
		Opening:    "9:00 AM",
		Closing:    "24:00",
		Source:     "partial",
	}, nil)

	rec := serve(NewHandler(svc, logger.NewNop()), "salon-1", `{"openTime":"9:00 AM"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"partial"`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		body       string
		svcErr     error
		wantStatus int
	}{
		{"no user", "", `{"openTime":"9:00 AM"}`, nil, http.StatusUnauthorized},
		{"bad body", "salon-1", `{"openTime":`, nil, http.StatusBadRequest},
		{"unknown field", "salon-1", `{"open":"9:00 AM"}`, nil, http.StatusBadRequest},
		{"not owner", "user-7", `{"openTime":"9:00 AM"}`, hoursService.ErrAccessDenied, http.StatusForbidden},
		{"invalid time", "salon-1", `{"openTime":"25:00"}`, hoursService.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "salon-1", `{"openTime":"9:00 AM"}`, hoursService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockHoursService{}
			svc.On("Set", mock.Anything, mock.Anything).Return(nil, tt.svcErr)

			rec := serve(NewHandler(svc, logger.NewNop()), tt.userID, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
