package model

import "time"

type NearbyFacilityModel struct {
	ID             uint   `gorm:"primaryKey"`
	PropertyID     uint   `gorm:"not null;index"`
	Name           string `gorm:"not null"`
	FacilityType   string `gorm:"type:varchar(20);not null;index"`
	Distance       string `gorm:"type:varchar(50)"`
	DistanceMeters *int
	Latitude       string `gorm:"type:varchar(32)"`
	Longitude      string `gorm:"type:varchar(32)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (NearbyFacilityModel) TableName() string {
	return "nearby_facilities"
}
