package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Announcement is a notice posted by admins and visible to all
// authenticated users.
type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title"         json:"title"`
	Description string             `bson:"description"   json:"description"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
}
