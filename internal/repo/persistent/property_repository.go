package persistent

import (
	"strings"

	"estatehub/internal/entity"
	"estatehub/internal/model"

	"gorm.io/gorm"
)

type PropertyRepository interface {
	Create(property *entity.Property) error
	Update(property *entity.Property) error
	Delete(id uint) error
	GetByID(id uint) (*entity.Property, error)
	GetBySlug(slug string) (*entity.Property, error)
	SlugExists(slug string) (bool, error)
	List(filter *entity.PropertyFilter) ([]*entity.Property, int64, error)
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(property *entity.Property) error {
	propertyModel := ToPropertyModel(property)
	if err := r.db.Create(propertyModel).Error; err != nil {
		return err
	}
	*property = *ToPropertyEntity(propertyModel)
	return nil
}

func (r *propertyRepository) Update(property *entity.Property) error {
	propertyModel := ToPropertyModel(property)
	// Omit media so an update never rewrites attachment rows.
	return r.db.Omit("Media").Save(propertyModel).Error
}

func (r *propertyRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&model.PropertyMediaModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&model.NearbyFacilityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PropertyModel{}, "id = ?", id).Error
	})
}

func (r *propertyRepository) GetByID(id uint) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	if err := r.db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("property_media.order_index ASC")
	}).Where("id = ?", id).First(&propertyModel).Error; err != nil {
		return nil, err
	}
	return ToPropertyEntity(&propertyModel), nil
}

func (r *propertyRepository) GetBySlug(slug string) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	if err := r.db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("property_media.order_index ASC")
	}).Where("slug = ?", slug).First(&propertyModel).Error; err != nil {
		return nil, err
	}
	return ToPropertyEntity(&propertyModel), nil
}

func (r *propertyRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PropertyModel{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// List applies the normalized filter, returning one page of properties and
// the total match count. Ordering is newest-first with id as tiebreaker so
// pagination is deterministic between calls.
func (r *propertyRepository) List(filter *entity.PropertyFilter) ([]*entity.Property, int64, error) {
	query := applyPropertyFilter(r.db.Model(&model.PropertyModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var propertyModels []model.PropertyModel
	err := query.
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_media.order_index ASC")
		}).
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&propertyModels).Error
	if err != nil {
		return nil, 0, err
	}

	properties := make([]*entity.Property, len(propertyModels))
	for i := range propertyModels {
		properties[i] = ToPropertyEntity(&propertyModels[i])
	}
	return properties, total, nil
}

func applyPropertyFilter(query *gorm.DB, f *entity.PropertyFilter) *gorm.DB {
	if f.Status != nil {
		query = query.Where("status = ?", string(*f.Status))
	}
	if f.Category != nil {
		query = query.Where("category = ?", string(*f.Category))
	}
	if f.Type != nil {
		query = query.Where("property_type = ?", string(*f.Type))
	}
	if f.SubType != nil {
		query = query.Where("sub_type = ?", string(*f.SubType))
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinArea != nil {
		query = query.Where("area >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		query = query.Where("area <= ?", *f.MaxArea)
	}
	if f.Bedrooms != nil {
		query = query.Where("bedrooms = ?", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		query = query.Where("bathrooms = ?", *f.Bathrooms)
	}
	if f.Furnishing != nil {
		query = query.Where("furnished_status = ?", string(*f.Furnishing))
	}
	if f.Parking != nil {
		query = query.Where("parking = ?", string(*f.Parking))
	}
	if f.Facing != nil {
		query = query.Where("facing = ?", string(*f.Facing))
	}
	if f.IsActive != nil {
		query = query.Where("is_active = ?", *f.IsActive)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return query
}
