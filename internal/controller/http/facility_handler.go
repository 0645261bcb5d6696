package http

import (
	"errors"
	"net/http"

	"estatehub/internal/usecase"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	facilityUseCase usecase.FacilityUseCase
	logger          *logger.Logger
}

func NewFacilityHandler(facilityUseCase usecase.FacilityUseCase, logger *logger.Logger) *FacilityHandler {
	return &FacilityHandler{
		facilityUseCase: facilityUseCase,
		logger:          logger,
	}
}

// CreateFacility godoc
// @Summary      Add a nearby facility to a property
// @Description  Record a facility near a property. The canonical distance in meters is taken from distance_meters when given, parsed from the distance text otherwise, or computed from coordinates when both the property and the facility have them.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId path int true "Property ID"
// @Param        request body usecase.CreateFacilityInput true "Facility data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/properties/{propertyId}/facilities [post]
func (h *FacilityHandler) CreateFacility(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	var input usecase.CreateFacilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	facility, err := h.facilityUseCase.Create(propertyID, input)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create facility for property %d: %v", propertyID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create facility"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"facility": facility})
}

// DeleteFacility godoc
// @Summary      Delete a nearby facility
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Facility ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/facilities/{id} [delete]
func (h *FacilityHandler) DeleteFacility(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.facilityUseCase.Delete(id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
			return
		}
		h.logger.Error("Failed to delete facility %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete facility"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Facility deleted successfully"})
}
