package persistent

import (
	"estatehub/internal/entity"
	"estatehub/internal/model"

	"gorm.io/gorm"
)

type InquiryRepository interface {
	Create(inquiry *entity.Inquiry) error
	GetByID(id uint) (*entity.Inquiry, error)
	List(status string, limit, offset int) ([]*entity.Inquiry, int64, error)
	UpdateStatus(id uint, status entity.InquiryStatus) error
	Delete(id uint) error
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(inquiry *entity.Inquiry) error {
	inquiryModel := ToInquiryModel(inquiry)
	if inquiryModel.Status == "" {
		inquiryModel.Status = string(entity.InquiryNew)
	}
	if err := r.db.Create(inquiryModel).Error; err != nil {
		return err
	}
	*inquiry = *ToInquiryEntity(inquiryModel)
	return nil
}

func (r *inquiryRepository) GetByID(id uint) (*entity.Inquiry, error) {
	var inquiryModel model.InquiryModel
	if err := r.db.Where("id = ?", id).First(&inquiryModel).Error; err != nil {
		return nil, err
	}
	return ToInquiryEntity(&inquiryModel), nil
}

func (r *inquiryRepository) List(status string, limit, offset int) ([]*entity.Inquiry, int64, error) {
	query := r.db.Model(&model.InquiryModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inquiryModels []model.InquiryModel
	err := query.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&inquiryModels).Error
	if err != nil {
		return nil, 0, err
	}

	inquiries := make([]*entity.Inquiry, len(inquiryModels))
	for i := range inquiryModels {
		inquiries[i] = ToInquiryEntity(&inquiryModels[i])
	}
	return inquiries, total, nil
}

func (r *inquiryRepository) UpdateStatus(id uint, status entity.InquiryStatus) error {
	result := r.db.Model(&model.InquiryModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inquiryRepository) Delete(id uint) error {
	return r.db.Delete(&model.InquiryModel{}, "id = ?", id).Error
}
