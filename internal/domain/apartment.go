package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ApartmentStatus tracks whether an apartment can be applied for.
type ApartmentStatus string

const (
	ApartmentAvailable   ApartmentStatus = "available"
	ApartmentUnavailable ApartmentStatus = "unavailable"
)

// Apartment is a rentable unit. Status is mutated only by the rental
// workflow: "unavailable" while an approved agreement references it,
// "available" again after the tenant moves out.
type Apartment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Image       string             `bson:"image"         json:"image"`
	FloorNo     int                `bson:"floorNo"       json:"floorNo"`
	BlockName   string             `bson:"blockName"     json:"blockName"`
	ApartmentNo string             `bson:"apartmentNo"   json:"apartmentNo"`
	Rent        int                `bson:"rent"          json:"rent"`
	Status      ApartmentStatus    `bson:"status"        json:"status"`
}
