package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Coupon is a rent discount code created by admins.
type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Code        string             `bson:"code"          json:"code"`
	Discount    int                `bson:"discount"      json:"discount"`
	Description string             `bson:"description"   json:"description"`
}
