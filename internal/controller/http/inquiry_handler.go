package http

import (
	"errors"
	"net/http"
	"strconv"

	"estatehub/internal/entity"
	"estatehub/internal/usecase"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

const defaultInquiryPageSize = 20

type InquiryHandler struct {
	inquiryUseCase usecase.InquiryUseCase
	logger         *logger.Logger
}

func NewInquiryHandler(inquiryUseCase usecase.InquiryUseCase, logger *logger.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
		logger:         logger,
	}
}

// CreateInquiry godoc
// @Summary      Submit an inquiry
// @Description  Submit a contact inquiry, optionally linked to a property
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        request body usecase.CreateInquiryInput true "Inquiry data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /inquiries [post]
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var input usecase.CreateInquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry, err := h.inquiryUseCase.Create(input)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.Error("Failed to create inquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry submitted successfully",
		"inquiry": inquiry,
	})
}

// ListInquiries godoc
// @Summary      List inquiries
// @Description  Get inquiries ordered newest first, optionally filtered by status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Status filter" Enums(new, contacted, resolved)
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (default 20)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/inquiries [get]
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	page := 1
	limit := defaultInquiryPageSize

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	inquiries, total, err := h.inquiryUseCase.List(c.Query("status"), page, limit)
	if err != nil {
		h.logger.Error("Failed to list inquiries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inquiries": inquiries,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

// UpdateInquiryStatus godoc
// @Summary      Update inquiry status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Inquiry ID"
// @Param        request body object true "New status" SchemaExample({"status":"contacted"})
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/inquiries/{id}/status [put]
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status entity.InquiryStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry, err := h.inquiryUseCase.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update inquiry %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inquiry": inquiry})
}

// DeleteInquiry godoc
// @Summary      Delete an inquiry
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Inquiry ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/inquiries/{id} [delete]
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.inquiryUseCase.Delete(id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		h.logger.Error("Failed to delete inquiry %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted successfully"})
}
