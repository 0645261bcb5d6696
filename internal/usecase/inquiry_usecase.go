package usecase

import (
	"errors"
	"fmt"

	"estatehub/internal/entity"
	"estatehub/internal/repo/persistent"
	"estatehub/pkg/logger"

	"gorm.io/gorm"
)

type CreateInquiryInput struct {
	PropertyID *uint  `json:"property_id"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message" binding:"required"`
}

type InquiryUseCase interface {
	Create(input CreateInquiryInput) (*entity.Inquiry, error)
	List(status string, page, limit int) ([]*entity.Inquiry, int64, error)
	UpdateStatus(id uint, status entity.InquiryStatus) (*entity.Inquiry, error)
	Delete(id uint) error
}

type inquiryUseCase struct {
	inquiryRepo  persistent.InquiryRepository
	propertyRepo persistent.PropertyRepository
	notifier     Notifier
	logger       *logger.Logger
}

func NewInquiryUseCase(
	inquiryRepo persistent.InquiryRepository,
	propertyRepo persistent.PropertyRepository,
	notifier Notifier,
	logger *logger.Logger,
) InquiryUseCase {
	return &inquiryUseCase{
		inquiryRepo:  inquiryRepo,
		propertyRepo: propertyRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *inquiryUseCase) Create(input CreateInquiryInput) (*entity.Inquiry, error) {
	if input.PropertyID != nil {
		if _, err := uc.propertyRepo.GetByID(*input.PropertyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	inquiry := &entity.Inquiry{
		PropertyID: input.PropertyID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		Status:     entity.InquiryNew,
	}

	if err := uc.inquiryRepo.Create(inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	if uc.notifier != nil {
		go uc.publishInquiryEvent(inquiry)
	}

	return inquiry, nil
}

func (uc *inquiryUseCase) List(status string, page, limit int) ([]*entity.Inquiry, int64, error) {
	// Unknown status values behave as "no filter", matching the search
	// endpoint's tolerance for stale client state.
	if status != "" && !entity.InquiryStatus(status).Valid() {
		status = ""
	}
	offset := (page - 1) * limit
	return uc.inquiryRepo.List(status, limit, offset)
}

func (uc *inquiryUseCase) UpdateStatus(id uint, status entity.InquiryStatus) (*entity.Inquiry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid inquiry status %q", ErrValidation, status)
	}

	if err := uc.inquiryRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return uc.inquiryRepo.GetByID(id)
}

func (uc *inquiryUseCase) Delete(id uint) error {
	if _, err := uc.inquiryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return uc.inquiryRepo.Delete(id)
}

func (uc *inquiryUseCase) publishInquiryEvent(inquiry *entity.Inquiry) {
	event := map[string]interface{}{
		"inquiry_id": inquiry.ID,
		"name":       inquiry.Name,
		"email":      inquiry.Email,
		"message":    inquiry.Message,
		"created_at": inquiry.CreatedAt,
	}
	if inquiry.PropertyID != nil {
		event["property_id"] = *inquiry.PropertyID
	}

	if err := uc.notifier.PublishInquiryEvent(event); err != nil {
		uc.logger.Error("Failed to publish inquiry event: %v", err)
	}
}
