package usecase

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"estatehub/internal/distance"
	"estatehub/internal/entity"
	"estatehub/internal/repo/persistent"
	"estatehub/pkg/geo"
	"estatehub/pkg/logger"

	"gorm.io/gorm"
)

type CreateFacilityInput struct {
	Name           string              `json:"name" binding:"required"`
	FacilityType   entity.FacilityType `json:"facility_type" binding:"required"`
	Distance       string              `json:"distance"`
	DistanceMeters *int                `json:"distance_meters"`
	Latitude       string              `json:"latitude"`
	Longitude      string              `json:"longitude"`
}

type FacilityUseCase interface {
	Create(propertyID uint, input CreateFacilityInput) (*entity.NearbyFacility, error)
	Nearby(propertyID uint, radiusKm float64, facilityType string) ([]*entity.NearbyFacility, error)
	Delete(id uint) error
}

type facilityUseCase struct {
	facilityRepo persistent.FacilityRepository
	propertyRepo persistent.PropertyRepository
	logger       *logger.Logger
}

func NewFacilityUseCase(
	facilityRepo persistent.FacilityRepository,
	propertyRepo persistent.PropertyRepository,
	logger *logger.Logger,
) FacilityUseCase {
	return &facilityUseCase{
		facilityRepo: facilityRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create attaches a facility to a property, deriving the canonical distance
// from the best available source: an explicit meters value, the free-text
// distance, or the coordinates of both ends. All three missing is fine; the
// facility is stored with a null canonical distance rather than rejected.
func (uc *facilityUseCase) Create(propertyID uint, input CreateFacilityInput) (*entity.NearbyFacility, error) {
	property, err := uc.propertyRepo.GetByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !input.FacilityType.Valid() {
		return nil, fmt.Errorf("%w: invalid facility type %q", ErrValidation, input.FacilityType)
	}
	if input.DistanceMeters != nil && *input.DistanceMeters < 0 {
		return nil, fmt.Errorf("%w: distance_meters must not be negative", ErrValidation)
	}

	facility := &entity.NearbyFacility{
		PropertyID:   propertyID,
		Name:         input.Name,
		FacilityType: input.FacilityType,
		Distance:     input.Distance,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}

	switch {
	case input.DistanceMeters != nil:
		facility.DistanceMeters = input.DistanceMeters
	default:
		if meters, ok := distance.ParseText(input.Distance); ok {
			facility.DistanceMeters = &meters
			break
		}
		if meters, ok := distanceFromCoords(property, input); ok {
			facility.DistanceMeters = &meters
			if input.Distance == "" {
				facility.Distance = distance.Format(meters)
			}
		}
	}

	if err := uc.facilityRepo.Create(facility); err != nil {
		return nil, fmt.Errorf("failed to create facility: %w", err)
	}

	return facility, nil
}

// Nearby filters a property's facilities to those within the radius. A
// facility without a canonical distance falls back to its free-text value;
// when neither yields a number the facility is excluded, since an unknown
// distance cannot be counted as within any radius.
func (uc *facilityUseCase) Nearby(propertyID uint, radiusKm float64, facilityType string) ([]*entity.NearbyFacility, error) {
	if _, err := uc.propertyRepo.GetByID(propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	facilities, err := uc.facilityRepo.GetByProperty(propertyID)
	if err != nil {
		return nil, err
	}

	threshold := int(math.Round(radiusKm * 1000))
	result := make([]*entity.NearbyFacility, 0, len(facilities))
	for _, facility := range facilities {
		meters, ok := facilityMeters(facility)
		if !ok || meters > threshold {
			continue
		}
		if facilityType != "" && string(facility.FacilityType) != facilityType {
			continue
		}
		result = append(result, facility)
	}

	return result, nil
}

func (uc *facilityUseCase) Delete(id uint) error {
	if _, err := uc.facilityRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return uc.facilityRepo.Delete(id)
}

func facilityMeters(facility *entity.NearbyFacility) (int, bool) {
	if facility.DistanceMeters != nil {
		return *facility.DistanceMeters, true
	}
	return distance.ParseText(facility.Distance)
}

func distanceFromCoords(property *entity.Property, input CreateFacilityInput) (int, bool) {
	if property.Latitude == "" || property.Longitude == "" || input.Latitude == "" || input.Longitude == "" {
		return 0, false
	}

	propLat, err1 := strconv.ParseFloat(property.Latitude, 64)
	propLon, err2 := strconv.ParseFloat(property.Longitude, 64)
	facLat, err3 := strconv.ParseFloat(input.Latitude, 64)
	facLon, err4 := strconv.ParseFloat(input.Longitude, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return 0, false
	}

	meters := int(math.Round(geo.DistanceMeters(propLat, propLon, facLat, facLon)))
	return meters, true
}
