package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Agreement validation errors
var (
	ErrEmptyApartmentID = errors.New("apartment ID cannot be empty")
)

// AgreementStatus is the lifecycle state of a rental application.
// "pending" until an admin decides; "checked" afterwards regardless of
// whether the decision was approval or rejection.
type AgreementStatus string

const (
	AgreementPending AgreementStatus = "pending"
	AgreementChecked AgreementStatus = "checked"
)

// Agreement is a rental application linking a user to an apartment.
// An email holds at most one agreement record at a time, whatever its
// status; the record is never deleted by the workflow.
type Agreement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserName    string             `bson:"userName"      json:"userName"`
	Email       string             `bson:"email"         json:"email"`
	FloorNo     int                `bson:"floorNo"       json:"floorNo"`
	BlockName   string             `bson:"blockName"     json:"blockName"`
	ApartmentNo string             `bson:"apartmentNo"   json:"apartmentNo"`
	Rent        int                `bson:"rent"          json:"rent"`
	ApartmentID string             `bson:"apartmentId"   json:"apartmentId"`
	Status      AgreementStatus    `bson:"status"        json:"status"`
	RequestDate string             `bson:"requestDate,omitempty" json:"requestDate,omitempty"`
	AcceptDate  string             `bson:"acceptDate,omitempty"  json:"acceptDate,omitempty"`
}

// Validate checks the fields the workflow depends on. Dates are kept as
// opaque strings supplied by the client, matching the stored wire format.
func (a *Agreement) Validate() error {
	if a.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(a.Email) {
		return ErrInvalidEmail
	}
	if a.ApartmentID == "" {
		return ErrEmptyApartmentID
	}
	return nil
}
