package entity

import "time"

type FacilityType string

const (
	FacilitySchool     FacilityType = "school"
	FacilityHospital   FacilityType = "hospital"
	FacilityMarket     FacilityType = "market"
	FacilityPark       FacilityType = "park"
	FacilityMetro      FacilityType = "metro"
	FacilityBusStop    FacilityType = "bus_stop"
	FacilityBank       FacilityType = "bank"
	FacilityATM        FacilityType = "atm"
	FacilityRestaurant FacilityType = "restaurant"
	FacilityGym        FacilityType = "gym"
	FacilityTemple     FacilityType = "temple"
	FacilityMall       FacilityType = "mall"
	FacilityGasStation FacilityType = "gas_station"
	FacilityOther      FacilityType = "other"
)

var validFacilityTypes = map[FacilityType]bool{
	FacilitySchool: true, FacilityHospital: true, FacilityMarket: true,
	FacilityPark: true, FacilityMetro: true, FacilityBusStop: true,
	FacilityBank: true, FacilityATM: true, FacilityRestaurant: true,
	FacilityGym: true, FacilityTemple: true, FacilityMall: true,
	FacilityGasStation: true, FacilityOther: true,
}

func (f FacilityType) Valid() bool { return validFacilityTypes[f] }

// NearbyFacility is an amenity attached to a property. Distance is the
// display string; DistanceMeters is the canonical value and stays nil when
// no source could produce one.
type NearbyFacility struct {
	ID             uint         `json:"id"`
	PropertyID     uint         `json:"property_id"`
	Name           string       `json:"name"`
	FacilityType   FacilityType `json:"facility_type"`
	Distance       string       `json:"distance,omitempty"`
	DistanceMeters *int         `json:"distance_meters,omitempty"`
	Latitude       string       `json:"latitude,omitempty"`
	Longitude      string       `json:"longitude,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
