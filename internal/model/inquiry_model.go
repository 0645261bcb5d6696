package model

import "time"

type InquiryModel struct {
	ID         uint  `gorm:"primaryKey"`
	PropertyID *uint `gorm:"index"`
	Name       string `gorm:"not null"`
	Email      string `gorm:"not null;index"`
	Phone      string `gorm:"type:varchar(20)"`
	Message    string `gorm:"type:text;not null"`
	Status     string `gorm:"type:varchar(20);default:'new';index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (InquiryModel) TableName() string {
	return "inquiries"
}
