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

type PropertyHandler struct {
	propertyUseCase  usecase.PropertyUseCase
	facilityUseCase  usecase.FacilityUseCase
	logger           *logger.Logger
	pageSize         int
	featuredPageSize int
}

func NewPropertyHandler(
	propertyUseCase usecase.PropertyUseCase,
	facilityUseCase usecase.FacilityUseCase,
	logger *logger.Logger,
	pageSize, featuredPageSize int,
) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase:  propertyUseCase,
		facilityUseCase:  facilityUseCase,
		logger:           logger,
		pageSize:         pageSize,
		featuredPageSize: featuredPageSize,
	}
}

// ListProperties godoc
// @Summary      List properties
// @Description  Get a paginated list of properties with optional filters. Unknown or malformed filter values are ignored.
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        status query string false "Transaction status" Enums(sale, rent)
// @Param        category query string false "Category" Enums(residential, commercial)
// @Param        propertyType query string false "Property type"
// @Param        subType query string false "Sub type"
// @Param        furnishedStatus query string false "Furnishing"
// @Param        parking query string false "Parking"
// @Param        facing query string false "Facing"
// @Param        minPrice query int false "Minimum price"
// @Param        maxPrice query int false "Maximum price"
// @Param        minArea query number false "Minimum area"
// @Param        maxArea query number false "Maximum area"
// @Param        bedrooms query int false "Bedrooms"
// @Param        bathrooms query int false "Bathrooms"
// @Param        search query string false "Search in title and description"
// @Param        isActive query bool false "Visibility (default true)"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 9)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filter := entity.BuildPropertyFilter(c.Request.URL.Query(), h.pageSize)

	// The public listing hides inactive properties unless the client
	// passed isActive explicitly
	if filter.IsActive == nil {
		active := true
		filter.IsActive = &active
	}

	properties, total, err := h.propertyUseCase.List(filter)
	if err != nil {
		h.logger.Error("Failed to list properties: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
		"pagination": gin.H{
			"page":       filter.Page,
			"limit":      filter.Limit,
			"total":      total,
			"totalPages": filter.TotalPages(total),
		},
	})
}

// ListFeaturedProperties godoc
// @Summary      List featured properties
// @Description  Get the most recent active properties for the landing page
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        limit query int false "Number of listings (default 6)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /featured-properties [get]
func (h *PropertyHandler) ListFeaturedProperties(c *gin.Context) {
	limit := h.featuredPageSize
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		limit = n
	}

	properties, err := h.propertyUseCase.Featured(limit)
	if err != nil {
		h.logger.Error("Failed to fetch featured properties: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// GetProperty godoc
// @Summary      Get property by slug
// @Description  Get full property details including media by URL slug
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        slug path string true "Property slug"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /properties/{slug} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	slug := c.Param("slug")

	property, err := h.propertyUseCase.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.Error("Failed to get property %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// GetNearbyFacilities godoc
// @Summary      List nearby facilities within a radius
// @Description  Get facilities recorded for a property that fall within the given radius. Facilities with no usable distance are excluded.
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id path int true "Property ID"
// @Param        radius query number false "Radius in kilometers (default 1.0)"
// @Param        facilityType query string false "Filter by facility type"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /properties/{id}/nearby-facilities [get]
func (h *PropertyHandler) GetNearbyFacilities(c *gin.Context) {
	// Shares the path segment with GetProperty, so the param is named slug
	id, err := strconv.ParseUint(c.Param("slug"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	radiusKm := 1.0
	if radiusStr := c.Query("radius"); radiusStr != "" {
		if r, err := strconv.ParseFloat(radiusStr, 64); err == nil && r > 0 {
			radiusKm = r
		}
	}

	facilities, err := h.facilityUseCase.Nearby(uint(id), radiusKm, c.Query("facilityType"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.Error("Failed to fetch nearby facilities for property %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nearby facilities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"facilities": facilities,
		"count":      len(facilities),
		"radius_km":  radiusKm,
	})
}

// AdminListProperties godoc
// @Summary      List properties for administration
// @Description  Get a paginated list of all properties including inactive ones
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/properties [get]
func (h *PropertyHandler) AdminListProperties(c *gin.Context) {
	filter := entity.BuildPropertyFilter(c.Request.URL.Query(), h.pageSize)

	properties, total, err := h.propertyUseCase.List(filter)
	if err != nil {
		h.logger.Error("Failed to list properties: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
		"pagination": gin.H{
			"page":       filter.Page,
			"limit":      filter.Limit,
			"total":      total,
			"totalPages": filter.TotalPages(total),
		},
	})
}

// AdminGetProperty godoc
// @Summary      Get property by ID
// @Description  Get full property details by numeric ID
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId path int true "Property ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/properties/{propertyId} [get]
func (h *PropertyHandler) AdminGetProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	property, err := h.propertyUseCase.GetByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.Error("Failed to get property %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// CreateProperty godoc
// @Summary      Create a property
// @Description  Create a new property listing. The slug is derived from the title.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.CreatePropertyInput true "Property data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var input usecase.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyUseCase.Create(input)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create property: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"property": property})
}

// UpdateProperty godoc
// @Summary      Update a property
// @Description  Update property fields. Omitted fields keep their current values. The slug never changes.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId path int true "Property ID"
// @Param        request body usecase.UpdatePropertyInput true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/properties/{propertyId} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	var input usecase.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyUseCase.Update(id, input)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update property %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// DeleteProperty godoc
// @Summary      Delete a property
// @Description  Delete a property along with its media and nearby facilities
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId path int true "Property ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/properties/{propertyId} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	if err := h.propertyUseCase.Delete(id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.Error("Failed to delete property %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
