package persistent

import (
	"estatehub/internal/entity"
	"estatehub/internal/model"

	"gorm.io/gorm"
)

type FacilityRepository interface {
	Create(facility *entity.NearbyFacility) error
	GetByID(id uint) (*entity.NearbyFacility, error)
	GetByProperty(propertyID uint) ([]*entity.NearbyFacility, error)
	Delete(id uint) error
}

type facilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) Create(facility *entity.NearbyFacility) error {
	facilityModel := ToFacilityModel(facility)
	if err := r.db.Create(facilityModel).Error; err != nil {
		return err
	}
	*facility = *ToFacilityEntity(facilityModel)
	return nil
}

func (r *facilityRepository) GetByID(id uint) (*entity.NearbyFacility, error) {
	var facilityModel model.NearbyFacilityModel
	if err := r.db.Where("id = ?", id).First(&facilityModel).Error; err != nil {
		return nil, err
	}
	return ToFacilityEntity(&facilityModel), nil
}

func (r *facilityRepository) GetByProperty(propertyID uint) ([]*entity.NearbyFacility, error) {
	var facilityModels []model.NearbyFacilityModel
	err := r.db.Where("property_id = ?", propertyID).
		Order("distance_meters ASC NULLS LAST, id ASC").
		Find(&facilityModels).Error
	if err != nil {
		return nil, err
	}

	facilities := make([]*entity.NearbyFacility, len(facilityModels))
	for i := range facilityModels {
		facilities[i] = ToFacilityEntity(&facilityModels[i])
	}
	return facilities, nil
}

func (r *facilityRepository) Delete(id uint) error {
	return r.db.Delete(&model.NearbyFacilityModel{}, "id = ?", id).Error
}
