package http

import (
	"errors"
	"net/http"

	"estatehub/internal/usecase"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

// UploadMedia godoc
// @Summary      Upload a media file for a property
// @Description  Upload an image or video. The file is stored in object storage and appended after the property's existing media.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId path int true "Property ID"
// @Param        file formData file true "Image or video file"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/properties/{propertyId}/media [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}

	media, err := h.mediaUseCase.Upload(propertyID, file)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to upload media for property %d: %v", propertyID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload media"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"media": media})
}

// SetFeaturedMedia godoc
// @Summary      Mark a media item as the property's featured image
// @Description  Make the given media item the featured one for its property. Any previously featured item is unmarked in the same transaction.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId path int true "Property ID"
// @Param        mediaId path int true "Media ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/properties/{propertyId}/media/{mediaId}/featured [put]
func (h *MediaHandler) SetFeaturedMedia(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}
	mediaID, ok := parseIDParam(c, "mediaId")
	if !ok {
		return
	}

	if err := h.mediaUseCase.SetFeatured(propertyID, mediaID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		h.logger.Error("Failed to set featured media %d for property %d: %v", mediaID, propertyID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set featured media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Featured media updated"})
}

// DeleteMedia godoc
// @Summary      Delete a media item
// @Description  Remove a media item and its stored object
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Media ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.mediaUseCase.Delete(id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		h.logger.Error("Failed to delete media %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}
