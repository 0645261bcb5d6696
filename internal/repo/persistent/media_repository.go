package persistent

import (
	"estatehub/internal/entity"
	"estatehub/internal/model"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(media *entity.PropertyMedia) error
	GetByID(id uint) (*entity.PropertyMedia, error)
	Delete(id uint) error
	SetFeatured(propertyID, mediaID uint) error
	NextOrderIndex(propertyID uint) (int, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(media *entity.PropertyMedia) error {
	mediaModel := ToPropertyMediaModel(media)
	if err := r.db.Create(mediaModel).Error; err != nil {
		return err
	}
	*media = ToPropertyMediaEntity(mediaModel)
	return nil
}

func (r *mediaRepository) GetByID(id uint) (*entity.PropertyMedia, error) {
	var mediaModel model.PropertyMediaModel
	if err := r.db.Where("id = ?", id).First(&mediaModel).Error; err != nil {
		return nil, err
	}
	media := ToPropertyMediaEntity(&mediaModel)
	return &media, nil
}

func (r *mediaRepository) Delete(id uint) error {
	return r.db.Delete(&model.PropertyMediaModel{}, "id = ?", id).Error
}

// SetFeatured marks one media item as featured, clearing any previous flag
// for the property in the same transaction so there is never a window with
// zero or two featured items.
func (r *mediaRepository) SetFeatured(propertyID, mediaID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var mediaModel model.PropertyMediaModel
		if err := tx.Where("id = ? AND property_id = ?", mediaID, propertyID).First(&mediaModel).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.PropertyMediaModel{}).
			Where("property_id = ? AND is_featured = ?", propertyID, true).
			Update("is_featured", false).Error; err != nil {
			return err
		}

		return tx.Model(&model.PropertyMediaModel{}).
			Where("id = ?", mediaID).
			Update("is_featured", true).Error
	})
}

func (r *mediaRepository) NextOrderIndex(propertyID uint) (int, error) {
	var maxIndex *int
	err := r.db.Model(&model.PropertyMediaModel{}).
		Where("property_id = ?", propertyID).
		Select("MAX(order_index)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	if maxIndex == nil {
		return 0, nil
	}
	return *maxIndex + 1, nil
}
