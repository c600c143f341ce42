package domain

// Building is a managed residential tower.
type Building struct {
	ID                 string `json:"id" bson:"_id"`
	Name               string `json:"name" bson:"name"`
	Address            string `json:"address" bson:"address"`
	Floors             int    `json:"floors" bson:"floors"`
	TotalApartments    int    `json:"total_apartments" bson:"total_apartments"`
	OccupiedApartments int    `json:"occupied_apartments" bson:"occupied_apartments"`
}

// ApartmentStatus is the occupancy state of an apartment.
type ApartmentStatus string

const (
	ApartmentOccupied    ApartmentStatus = "occupied"
	ApartmentVacant      ApartmentStatus = "vacant"
	ApartmentMaintenance ApartmentStatus = "maintenance"
)

// Apartment is a unit inside a building.
type Apartment struct {
	ID            string          `json:"id" bson:"_id"`
	BuildingID    string          `json:"building_id" bson:"building_id"`
	Floor         int             `json:"floor" bson:"floor"`
	Unit          string          `json:"unit" bson:"unit"`
	Type          string          `json:"type" bson:"type"`
	HomeownerID   string          `json:"homeowner_id,omitempty" bson:"homeowner_id,omitempty"`
	HomeownerName string          `json:"homeowner_name,omitempty" bson:"homeowner_name,omitempty"`
	DeviceCount   int             `json:"device_count" bson:"device_count"`
	Status        ApartmentStatus `json:"status" bson:"status"`
}
