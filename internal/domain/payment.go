package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment records a completed rent payment. TransactionID comes from the
// payment gateway; Month is a free-form label the member can later search on.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email"         json:"email"`
	Month         string             `bson:"month"         json:"month"`
	Rent          int                `bson:"rent"          json:"rent"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}
