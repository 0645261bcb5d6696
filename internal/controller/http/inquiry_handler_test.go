package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estatehub/internal/entity"
	"estatehub/internal/usecase"
	"estatehub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateInquiry_Success(t *testing.T) {
	inquiryUC := new(MockInquiryUseCase)
	handler := NewInquiryHandler(inquiryUC, logger.New())

	router := setupTestRouter()
	router.POST("/api/inquiries", handler.CreateInquiry)

	inquiryUC.On("Create", mock.MatchedBy(func(input usecase.CreateInquiryInput) bool {
		return input.Name == "Asha Verma" && input.Email == "asha@example.com"
	})).Return(&entity.Inquiry{ID: 1, Status: entity.InquiryNew}, nil)

	body := `{"name":"Asha Verma","email":"asha@example.com","message":"Interested in the villa"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/inquiries", newJSONBody(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Inquiry submitted successfully", response["message"])

	inquiryUC.AssertExpectations(t)
}

func TestCreateInquiry_MissingFields(t *testing.T) {
	inquiryUC := new(MockInquiryUseCase)
	handler := NewInquiryHandler(inquiryUC, logger.New())

	router := setupTestRouter()
	router.POST("/api/inquiries", handler.CreateInquiry)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/inquiries", newJSONBody(`{"name":"No Email"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	inquiryUC.AssertNotCalled(t, "Create")
}

func TestCreateInquiry_UnknownProperty(t *testing.T) {
	inquiryUC := new(MockInquiryUseCase)
	handler := NewInquiryHandler(inquiryUC, logger.New())

	router := setupTestRouter()
	router.POST("/api/inquiries", handler.CreateInquiry)

	inquiryUC.On("Create", mock.AnythingOfType("usecase.CreateInquiryInput")).
		Return(nil, usecase.ErrNotFound)

	body := `{"property_id":999,"name":"Rohit Sen","email":"rohit@example.com","message":"Still available?"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/inquiries", newJSONBody(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListInquiries_StatusFilter(t *testing.T) {
	inquiryUC := new(MockInquiryUseCase)
	handler := NewInquiryHandler(inquiryUC, logger.New())

	router := setupTestRouter()
	router.GET("/api/admin/inquiries", handler.ListInquiries)

	inquiryUC.On("List", "new", 1, 20).Return([]*entity.Inquiry{{ID: 1}}, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/inquiries?status=new", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["total"])
	assert.Len(t, response["inquiries"], 1)

	inquiryUC.AssertExpectations(t)
}

func TestUpdateInquiryStatus_Success(t *testing.T) {
	inquiryUC := new(MockInquiryUseCase)
	handler := NewInquiryHandler(inquiryUC, logger.New())

	router := setupTestRouter()
	router.PUT("/api/admin/inquiries/:id/status", handler.UpdateInquiryStatus)

	inquiryUC.On("UpdateStatus", uint(3), entity.InquiryContacted).
		Return(&entity.Inquiry{ID: 3, Status: entity.InquiryContacted}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/admin/inquiries/3/status", newJSONBody(`{"status":"contacted"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	inquiryUC.AssertExpectations(t)
}

func TestUpdateInquiryStatus_InvalidStatus(t *testing.T) {
	inquiryUC := new(MockInquiryUseCase)
	handler := NewInquiryHandler(inquiryUC, logger.New())

	router := setupTestRouter()
	router.PUT("/api/admin/inquiries/:id/status", handler.UpdateInquiryStatus)

	inquiryUC.On("UpdateStatus", uint(3), entity.InquiryStatus("archived")).
		Return(nil, usecase.ErrValidation)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/admin/inquiries/3/status", newJSONBody(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteInquiry_NotFound(t *testing.T) {
	inquiryUC := new(MockInquiryUseCase)
	handler := NewInquiryHandler(inquiryUC, logger.New())

	router := setupTestRouter()
	router.DELETE("/api/admin/inquiries/:id", handler.DeleteInquiry)

	inquiryUC.On("Delete", uint(99)).Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/admin/inquiries/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
