package persistent

import (
	"estatehub/internal/entity"
	"estatehub/internal/model"
)

func ToPropertyEntity(m *model.PropertyModel) *entity.Property {
	if m == nil {
		return nil
	}

	p := &entity.Property{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Status:      entity.TransactionStatus(m.Status),
		Category:    entity.Category(m.Category),
		Type:        entity.PropertyType(m.Type),
		SubType:     entity.SubType(m.SubType),
		Area:        m.Area,
		AreaUnit:    entity.AreaUnit(m.AreaUnit),
		Bedrooms:    m.Bedrooms,
		Bathrooms:   m.Bathrooms,
		Price:       m.Price,
		Furnishing:  entity.Furnishing(m.Furnishing),
		Parking:     entity.Parking(m.Parking),
		Facing:      entity.Facing(m.Facing),
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.Media) > 0 {
		p.Media = make([]entity.PropertyMedia, len(m.Media))
		for i, mm := range m.Media {
			p.Media[i] = ToPropertyMediaEntity(&mm)
		}
	}

	return p
}

func ToPropertyModel(e *entity.Property) *model.PropertyModel {
	if e == nil {
		return nil
	}

	p := &model.PropertyModel{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Status:      string(e.Status),
		Category:    string(e.Category),
		Type:        string(e.Type),
		SubType:     string(e.SubType),
		Area:        e.Area,
		AreaUnit:    string(e.AreaUnit),
		Bedrooms:    e.Bedrooms,
		Bathrooms:   e.Bathrooms,
		Price:       e.Price,
		Furnishing:  string(e.Furnishing),
		Parking:     string(e.Parking),
		Facing:      string(e.Facing),
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if len(e.Media) > 0 {
		p.Media = make([]model.PropertyMediaModel, len(e.Media))
		for i, em := range e.Media {
			p.Media[i] = *ToPropertyMediaModel(&em)
		}
	}

	return p
}

func ToPropertyMediaEntity(m *model.PropertyMediaModel) entity.PropertyMedia {
	if m == nil {
		return entity.PropertyMedia{}
	}

	return entity.PropertyMedia{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		Kind:       entity.MediaKind(m.Kind),
		StorageKey: m.StorageKey,
		URL:        m.URL,
		IsFeatured: m.IsFeatured,
		OrderIndex: m.OrderIndex,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToPropertyMediaModel(e *entity.PropertyMedia) *model.PropertyMediaModel {
	if e == nil {
		return nil
	}

	return &model.PropertyMediaModel{
		ID:         e.ID,
		PropertyID: e.PropertyID,
		Kind:       string(e.Kind),
		StorageKey: e.StorageKey,
		URL:        e.URL,
		IsFeatured: e.IsFeatured,
		OrderIndex: e.OrderIndex,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToFacilityEntity(m *model.NearbyFacilityModel) *entity.NearbyFacility {
	if m == nil {
		return nil
	}

	return &entity.NearbyFacility{
		ID:             m.ID,
		PropertyID:     m.PropertyID,
		Name:           m.Name,
		FacilityType:   entity.FacilityType(m.FacilityType),
		Distance:       m.Distance,
		DistanceMeters: m.DistanceMeters,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToFacilityModel(e *entity.NearbyFacility) *model.NearbyFacilityModel {
	if e == nil {
		return nil
	}

	return &model.NearbyFacilityModel{
		ID:             e.ID,
		PropertyID:     e.PropertyID,
		Name:           e.Name,
		FacilityType:   string(e.FacilityType),
		Distance:       e.Distance,
		DistanceMeters: e.DistanceMeters,
		Latitude:       e.Latitude,
		Longitude:      e.Longitude,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToInquiryEntity(m *model.InquiryModel) *entity.Inquiry {
	if m == nil {
		return nil
	}

	return &entity.Inquiry{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Message:    m.Message,
		Status:     entity.InquiryStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToInquiryModel(e *entity.Inquiry) *model.InquiryModel {
	if e == nil {
		return nil
	}

	return &model.InquiryModel{
		ID:         e.ID,
		PropertyID: e.PropertyID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Message:    e.Message,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
