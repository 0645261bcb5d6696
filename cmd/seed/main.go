package main

import (
	"fmt"

	"estatehub/internal/model"
	"estatehub/pkg/config"
	"estatehub/pkg/database"
	"estatehub/pkg/logger"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedSuperadmin(db, cfg, log); err != nil {
		log.Error("Failed to seed superadmin: %v", err)
		panic(err)
	}

	if err := seedProperties(db, log); err != nil {
		log.Error("Failed to seed properties: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedSuperadmin(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	var existing model.UserModel
	result := db.Where("email = ?", cfg.AdminEmail).First(&existing)
	if result.Error == nil {
		log.Info("Superadmin %s already exists, skipping", cfg.AdminEmail)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.UserModel{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hashedPassword),
		Role:     "superadmin",
	}

	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create superadmin: %w", err)
	}

	log.Info("Created superadmin %s", cfg.AdminEmail)
	return nil
}

func seedProperties(db *gorm.DB, log *logger.Logger) error {
	two := 2
	three := 3

	demoProperties := []model.PropertyModel{
		{
			Title:       "Sunrise Villa in Green Park",
			Description: "Spacious villa with a private garden and covered parking.",
			Status:      "sale",
			Category:    "residential",
			Type:        "villa",
			SubType:     "3bhk",
			Area:        2400,
			AreaUnit:    "sq_ft",
			Bedrooms:    &three,
			Bathrooms:   &three,
			Price:       18500000,
			Furnishing:  "semi_furnished",
			Parking:     "covered",
			Facing:      "east",
			Latitude:    "28.5583",
			Longitude:   "77.2014",
			IsActive:    true,
		},
		{
			Title:       "Lakeview Apartment near City Center",
			Description: "Bright two bedroom apartment overlooking the lake.",
			Status:      "rent",
			Category:    "residential",
			Type:        "apartment",
			SubType:     "2bhk",
			Area:        1150,
			AreaUnit:    "sq_ft",
			Bedrooms:    &two,
			Bathrooms:   &two,
			Price:       42000,
			Furnishing:  "furnished",
			Parking:     "open",
			Facing:      "north",
			Latitude:    "28.5701",
			Longitude:   "77.1926",
			IsActive:    true,
		},
		{
			Title:       "Commercial Shop on Main Road",
			Description: "Street facing shop suitable for retail.",
			Status:      "sale",
			Category:    "commercial",
			Type:        "shop",
			SubType:     "other",
			Area:        420,
			AreaUnit:    "sq_ft",
			Price:       9500000,
			Parking:     "none",
			Facing:      "west",
			IsActive:    true,
		},
	}

	for i := range demoProperties {
		p := &demoProperties[i]
		p.Slug = slug.Make(p.Title)

		var existing model.PropertyModel
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			log.Info("Property %s already exists, skipping", p.Slug)
			continue
		}

		if err := db.Create(p).Error; err != nil {
			return fmt.Errorf("failed to create property %s: %w", p.Slug, err)
		}

		meters := 650
		facility := &model.NearbyFacilityModel{
			PropertyID:     p.ID,
			Name:           "Neighborhood School",
			FacilityType:   "school",
			Distance:       "650 m",
			DistanceMeters: &meters,
		}
		if err := db.Create(facility).Error; err != nil {
			return fmt.Errorf("failed to create facility for %s: %w", p.Slug, err)
		}

		log.Info("Created property %s", p.Slug)
	}

	return nil
}
