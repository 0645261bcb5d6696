package model

import "time"

type PropertyModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"not null"`
	Slug        string  `gorm:"uniqueIndex;not null"`
	Description string  `gorm:"type:text"`
	Status      string  `gorm:"type:varchar(10);not null;index"`
	Category    string  `gorm:"type:varchar(20);not null;index"`
	Type        string  `gorm:"column:property_type;type:varchar(30);not null;index"`
	SubType     string  `gorm:"type:varchar(10)"`
	Area        float64 `gorm:"not null"`
	AreaUnit    string  `gorm:"type:varchar(10);not null"`
	Bedrooms    *int
	Bathrooms   *int
	Price       int64  `gorm:"not null;index"`
	Furnishing  string `gorm:"column:furnished_status;type:varchar(20)"`
	Parking     string `gorm:"type:varchar(20)"`
	Facing      string `gorm:"type:varchar(20)"`
	Latitude    string `gorm:"type:varchar(32)"`
	Longitude   string `gorm:"type:varchar(32)"`
	IsActive    bool   `gorm:"default:true;index"`
	Media       []PropertyMediaModel `gorm:"foreignKey:PropertyID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PropertyModel) TableName() string {
	return "properties"
}

type PropertyMediaModel struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID uint   `gorm:"not null;index"`
	Kind       string `gorm:"type:varchar(10);not null"`
	StorageKey string `gorm:"not null"`
	URL        string `gorm:"not null"`
	IsFeatured bool   `gorm:"default:false"`
	OrderIndex int    `gorm:"default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PropertyMediaModel) TableName() string {
	return "property_media"
}
