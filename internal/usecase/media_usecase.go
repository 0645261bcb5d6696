package usecase

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"estatehub/internal/entity"
	"estatehub/internal/repo/persistent"
	"estatehub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaUseCase interface {
	Upload(propertyID uint, file *multipart.FileHeader) (*entity.PropertyMedia, error)
	SetFeatured(propertyID, mediaID uint) error
	Delete(mediaID uint) error
}

type mediaUseCase struct {
	mediaRepo    persistent.MediaRepository
	propertyRepo persistent.PropertyRepository
	mediaStore   MediaStore
	logger       *logger.Logger
}

func NewMediaUseCase(
	mediaRepo persistent.MediaRepository,
	propertyRepo persistent.PropertyRepository,
	mediaStore MediaStore,
	logger *logger.Logger,
) MediaUseCase {
	return &mediaUseCase{
		mediaRepo:    mediaRepo,
		propertyRepo: propertyRepo,
		mediaStore:   mediaStore,
		logger:       logger,
	}
}

func (uc *mediaUseCase) Upload(propertyID uint, file *multipart.FileHeader) (*entity.PropertyMedia, error) {
	if _, err := uc.propertyRepo.GetByID(propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	contentType := file.Header.Get("Content-Type")
	kind, err := mediaKindFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("properties/%d/%s%s", propertyID, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := uc.mediaStore.Upload(key, src, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	orderIndex, err := uc.mediaRepo.NextOrderIndex(propertyID)
	if err != nil {
		return nil, err
	}

	media := &entity.PropertyMedia{
		PropertyID: propertyID,
		Kind:       kind,
		StorageKey: key,
		URL:        url,
		OrderIndex: orderIndex,
	}

	if err := uc.mediaRepo.Create(media); err != nil {
		// Roll back the stored object so the bucket does not accumulate
		// orphans.
		if delErr := uc.mediaStore.Delete(key); delErr != nil {
			uc.logger.Warn("Failed to clean up object %s after create failure: %v", key, delErr)
		}
		return nil, fmt.Errorf("failed to create media record: %w", err)
	}

	return media, nil
}

func (uc *mediaUseCase) SetFeatured(propertyID, mediaID uint) error {
	if err := uc.mediaRepo.SetFeatured(propertyID, mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (uc *mediaUseCase) Delete(mediaID uint) error {
	media, err := uc.mediaRepo.GetByID(mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := uc.mediaStore.Delete(media.StorageKey); err != nil {
		uc.logger.Warn("Failed to delete media object %s: %v", media.StorageKey, err)
	}

	return uc.mediaRepo.Delete(mediaID)
}

func mediaKindFromContentType(contentType string) (entity.MediaKind, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return entity.MediaImage, nil
	case strings.HasPrefix(contentType, "video/"):
		return entity.MediaVideo, nil
	default:
		return "", fmt.Errorf("%w: unsupported content type %q", ErrValidation, contentType)
	}
}
