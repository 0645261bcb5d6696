package entity

import "time"

type TransactionStatus string

const (
	StatusSale TransactionStatus = "sale"
	StatusRent TransactionStatus = "rent"
)

type Category string

const (
	CategoryResidential Category = "residential"
	CategoryCommercial  Category = "commercial"
)

type PropertyType string

const (
	TypeApartment        PropertyType = "apartment"
	TypeIndependentHouse PropertyType = "independent_house"
	TypeVilla            PropertyType = "villa"
	TypeFarmHouse        PropertyType = "farm_house"
	TypeShop             PropertyType = "shop"
	TypeBasement         PropertyType = "basement"
)

type SubType string

const (
	SubType1RK   SubType = "1rk"
	SubType1BHK  SubType = "1bhk"
	SubType2BHK  SubType = "2bhk"
	SubType3BHK  SubType = "3bhk"
	SubType4BHK  SubType = "4bhk"
	SubTypePlot  SubType = "plot"
	SubTypeOther SubType = "other"
)

type AreaUnit string

const (
	AreaSqFt AreaUnit = "sq_ft"
	AreaSqMt AreaUnit = "sq_mt"
	AreaSqYd AreaUnit = "sq_yd"
)

type Furnishing string

const (
	Furnished     Furnishing = "furnished"
	SemiFurnished Furnishing = "semi_furnished"
	Unfurnished   Furnishing = "unfurnished"
)

type Parking string

const (
	ParkingNone    Parking = "none"
	ParkingOpen    Parking = "open"
	ParkingCovered Parking = "covered"
)

type Facing string

const (
	FacingNorth     Facing = "north"
	FacingSouth     Facing = "south"
	FacingEast      Facing = "east"
	FacingWest      Facing = "west"
	FacingNorthEast Facing = "north_east"
	FacingNorthWest Facing = "north_west"
	FacingSouthEast Facing = "south_east"
	FacingSouthWest Facing = "south_west"
)

var (
	validStatuses = map[TransactionStatus]bool{
		StatusSale: true, StatusRent: true,
	}
	validCategories = map[Category]bool{
		CategoryResidential: true, CategoryCommercial: true,
	}
	validPropertyTypes = map[PropertyType]bool{
		TypeApartment: true, TypeIndependentHouse: true, TypeVilla: true,
		TypeFarmHouse: true, TypeShop: true, TypeBasement: true,
	}
	validSubTypes = map[SubType]bool{
		SubType1RK: true, SubType1BHK: true, SubType2BHK: true,
		SubType3BHK: true, SubType4BHK: true, SubTypePlot: true, SubTypeOther: true,
	}
	validAreaUnits = map[AreaUnit]bool{
		AreaSqFt: true, AreaSqMt: true, AreaSqYd: true,
	}
	validFurnishings = map[Furnishing]bool{
		Furnished: true, SemiFurnished: true, Unfurnished: true,
	}
	validParkings = map[Parking]bool{
		ParkingNone: true, ParkingOpen: true, ParkingCovered: true,
	}
	validFacings = map[Facing]bool{
		FacingNorth: true, FacingSouth: true, FacingEast: true, FacingWest: true,
		FacingNorthEast: true, FacingNorthWest: true, FacingSouthEast: true, FacingSouthWest: true,
	}
)

func (s TransactionStatus) Valid() bool { return validStatuses[s] }
func (c Category) Valid() bool          { return validCategories[c] }
func (p PropertyType) Valid() bool      { return validPropertyTypes[p] }
func (s SubType) Valid() bool           { return validSubTypes[s] }
func (a AreaUnit) Valid() bool          { return validAreaUnits[a] }
func (f Furnishing) Valid() bool        { return validFurnishings[f] }
func (p Parking) Valid() bool           { return validParkings[p] }
func (f Facing) Valid() bool            { return validFacings[f] }

type Property struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Status      TransactionStatus `json:"status"`
	Category    Category          `json:"category"`
	Type        PropertyType      `json:"property_type"`
	SubType     SubType           `json:"sub_type,omitempty"`
	Area        float64           `json:"area"`
	AreaUnit    AreaUnit          `json:"area_unit"`
	Bedrooms    *int              `json:"bedrooms,omitempty"`
	Bathrooms   *int              `json:"bathrooms,omitempty"`
	// Price is kept in the smallest currency unit.
	Price      int64           `json:"price"`
	Furnishing Furnishing      `json:"furnished_status,omitempty"`
	Parking    Parking         `json:"parking,omitempty"`
	Facing     Facing          `json:"facing,omitempty"`
	Latitude   string          `json:"latitude,omitempty"`
	Longitude  string          `json:"longitude,omitempty"`
	IsActive   bool            `json:"is_active"`
	Media      []PropertyMedia `json:"media,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

type PropertyMedia struct {
	ID         uint      `json:"id"`
	PropertyID uint      `json:"property_id"`
	Kind       MediaKind `json:"kind"`
	StorageKey string    `json:"storage_key"`
	URL        string    `json:"url"`
	IsFeatured bool      `json:"is_featured"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
