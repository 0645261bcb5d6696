package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"estatehub/internal/entity"
	"estatehub/internal/repo/persistent"
	"estatehub/pkg/logger"

	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const featuredCacheTTL = 5 * time.Minute

type CreatePropertyInput struct {
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Status      entity.TransactionStatus `json:"status" binding:"required"`
	Category    entity.Category          `json:"category" binding:"required"`
	Type        entity.PropertyType      `json:"property_type" binding:"required"`
	SubType     entity.SubType           `json:"sub_type"`
	Area        float64                  `json:"area"`
	AreaUnit    entity.AreaUnit          `json:"area_unit" binding:"required"`
	Bedrooms    *int                     `json:"bedrooms"`
	Bathrooms   *int                     `json:"bathrooms"`
	Price       int64                    `json:"price"`
	Furnishing  entity.Furnishing        `json:"furnished_status"`
	Parking     entity.Parking           `json:"parking"`
	Facing      entity.Facing            `json:"facing"`
	Latitude    string                   `json:"latitude"`
	Longitude   string                   `json:"longitude"`
	IsActive    *bool                    `json:"is_active"`
}

type UpdatePropertyInput struct {
	Title       *string                   `json:"title"`
	Description *string                   `json:"description"`
	Status      *entity.TransactionStatus `json:"status"`
	Category    *entity.Category          `json:"category"`
	Type        *entity.PropertyType      `json:"property_type"`
	SubType     *entity.SubType           `json:"sub_type"`
	Area        *float64                  `json:"area"`
	AreaUnit    *entity.AreaUnit          `json:"area_unit"`
	Bedrooms    *int                      `json:"bedrooms"`
	Bathrooms   *int                      `json:"bathrooms"`
	Price       *int64                    `json:"price"`
	Furnishing  *entity.Furnishing        `json:"furnished_status"`
	Parking     *entity.Parking           `json:"parking"`
	Facing      *entity.Facing            `json:"facing"`
	Latitude    *string                   `json:"latitude"`
	Longitude   *string                   `json:"longitude"`
	IsActive    *bool                     `json:"is_active"`
}

type PropertyUseCase interface {
	List(filter *entity.PropertyFilter) ([]*entity.Property, int64, error)
	Featured(limit int) ([]*entity.Property, error)
	GetBySlug(slug string) (*entity.Property, error)
	GetByID(id uint) (*entity.Property, error)
	Create(input CreatePropertyInput) (*entity.Property, error)
	Update(id uint, input UpdatePropertyInput) (*entity.Property, error)
	Delete(id uint) error
}

type propertyUseCase struct {
	propertyRepo persistent.PropertyRepository
	mediaStore   MediaStore
	redisClient  *redis.Client
	logger       *logger.Logger
}

func NewPropertyUseCase(
	propertyRepo persistent.PropertyRepository,
	mediaStore MediaStore,
	redisClient *redis.Client,
	logger *logger.Logger,
) PropertyUseCase {
	return &propertyUseCase{
		propertyRepo: propertyRepo,
		mediaStore:   mediaStore,
		redisClient:  redisClient,
		logger:       logger,
	}
}

func (uc *propertyUseCase) List(filter *entity.PropertyFilter) ([]*entity.Property, int64, error) {
	return uc.propertyRepo.List(filter)
}

// Featured returns the newest active listings. Responses are cached in
// Redis per limit value and invalidated on any admin property write.
func (uc *propertyUseCase) Featured(limit int) ([]*entity.Property, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("featured_properties:%d", limit)

	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var properties []*entity.Property
			if err := json.Unmarshal([]byte(cached), &properties); err == nil {
				return properties, nil
			}
		}
	}

	active := true
	filter := &entity.PropertyFilter{IsActive: &active, Page: 1, Limit: limit}
	properties, _, err := uc.propertyRepo.List(filter)
	if err != nil {
		return nil, err
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(properties); err == nil {
			uc.redisClient.Set(ctx, cacheKey, data, featuredCacheTTL)
		}
	}

	return properties, nil
}

func (uc *propertyUseCase) GetBySlug(slugValue string) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetBySlug(slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return property, nil
}

func (uc *propertyUseCase) GetByID(id uint) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return property, nil
}

func (uc *propertyUseCase) Create(input CreatePropertyInput) (*entity.Property, error) {
	if err := validatePropertyEnums(input); err != nil {
		return nil, err
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if input.Area < 0 {
		return nil, fmt.Errorf("%w: area must not be negative", ErrValidation)
	}

	propertySlug, err := uc.uniqueSlug(input.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to derive slug: %w", err)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	property := &entity.Property{
		Title:       input.Title,
		Slug:        propertySlug,
		Description: input.Description,
		Status:      input.Status,
		Category:    input.Category,
		Type:        input.Type,
		SubType:     input.SubType,
		Area:        input.Area,
		AreaUnit:    input.AreaUnit,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Price:       input.Price,
		Furnishing:  input.Furnishing,
		Parking:     input.Parking,
		Facing:      input.Facing,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsActive:    isActive,
	}

	if err := uc.propertyRepo.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	uc.invalidateFeaturedCache()
	return property, nil
}

func (uc *propertyUseCase) Update(id uint, input UpdatePropertyInput) (*entity.Property, error) {
	property, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}

	// The slug stays stable even when the title changes; published URLs
	// must not break.
	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *input.Status)
		}
		property.Status = *input.Status
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, fmt.Errorf("%w: invalid category %q", ErrValidation, *input.Category)
		}
		property.Category = *input.Category
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, fmt.Errorf("%w: invalid property type %q", ErrValidation, *input.Type)
		}
		property.Type = *input.Type
	}
	if input.SubType != nil {
		if !input.SubType.Valid() {
			return nil, fmt.Errorf("%w: invalid sub type %q", ErrValidation, *input.SubType)
		}
		property.SubType = *input.SubType
	}
	if input.Area != nil {
		if *input.Area < 0 {
			return nil, fmt.Errorf("%w: area must not be negative", ErrValidation)
		}
		property.Area = *input.Area
	}
	if input.AreaUnit != nil {
		if !input.AreaUnit.Valid() {
			return nil, fmt.Errorf("%w: invalid area unit %q", ErrValidation, *input.AreaUnit)
		}
		property.AreaUnit = *input.AreaUnit
	}
	if input.Bedrooms != nil {
		property.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = input.Bathrooms
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
		property.Price = *input.Price
	}
	if input.Furnishing != nil {
		if !input.Furnishing.Valid() {
			return nil, fmt.Errorf("%w: invalid furnished status %q", ErrValidation, *input.Furnishing)
		}
		property.Furnishing = *input.Furnishing
	}
	if input.Parking != nil {
		if !input.Parking.Valid() {
			return nil, fmt.Errorf("%w: invalid parking %q", ErrValidation, *input.Parking)
		}
		property.Parking = *input.Parking
	}
	if input.Facing != nil {
		if !input.Facing.Valid() {
			return nil, fmt.Errorf("%w: invalid facing %q", ErrValidation, *input.Facing)
		}
		property.Facing = *input.Facing
	}
	if input.Latitude != nil {
		property.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		property.Longitude = *input.Longitude
	}
	if input.IsActive != nil {
		property.IsActive = *input.IsActive
	}

	if err := uc.propertyRepo.Update(property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	uc.invalidateFeaturedCache()
	return property, nil
}

func (uc *propertyUseCase) Delete(id uint) error {
	property, err := uc.GetByID(id)
	if err != nil {
		return err
	}

	// Best effort cleanup of stored objects; a failed delete in the media
	// store must not leave the listing behind.
	if uc.mediaStore != nil {
		for _, media := range property.Media {
			if err := uc.mediaStore.Delete(media.StorageKey); err != nil {
				uc.logger.Warn("Failed to delete media object %s: %v", media.StorageKey, err)
			}
		}
	}

	if err := uc.propertyRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	uc.invalidateFeaturedCache()
	return nil
}

func (uc *propertyUseCase) uniqueSlug(title string) (string, error) {
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		exists, err := uc.propertyRepo.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (uc *propertyUseCase) invalidateFeaturedCache() {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	keys, err := uc.redisClient.Keys(ctx, "featured_properties:*").Result()
	if err != nil {
		uc.logger.Warn("Failed to scan featured cache keys: %v", err)
		return
	}
	if len(keys) > 0 {
		uc.redisClient.Del(ctx, keys...)
	}
}

func validatePropertyEnums(input CreatePropertyInput) error {
	if !input.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, input.Status)
	}
	if !input.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", ErrValidation, input.Category)
	}
	if !input.Type.Valid() {
		return fmt.Errorf("%w: invalid property type %q", ErrValidation, input.Type)
	}
	if input.SubType != "" && !input.SubType.Valid() {
		return fmt.Errorf("%w: invalid sub type %q", ErrValidation, input.SubType)
	}
	if !input.AreaUnit.Valid() {
		return fmt.Errorf("%w: invalid area unit %q", ErrValidation, input.AreaUnit)
	}
	if input.Furnishing != "" && !input.Furnishing.Valid() {
		return fmt.Errorf("%w: invalid furnished status %q", ErrValidation, input.Furnishing)
	}
	if input.Parking != "" && !input.Parking.Valid() {
		return fmt.Errorf("%w: invalid parking %q", ErrValidation, input.Parking)
	}
	if input.Facing != "" && !input.Facing.Valid() {
		return fmt.Errorf("%w: invalid facing %q", ErrValidation, input.Facing)
	}
	return nil
}
