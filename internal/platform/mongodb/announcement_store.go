package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// AnnouncementStore implements store.AnnouncementStore over the
// announcements collection.
type AnnouncementStore struct {
	coll *mongo.Collection
}

var _ store.AnnouncementStore = (*AnnouncementStore)(nil)

// NewAnnouncementStore creates the MongoDB implementation of
// store.AnnouncementStore.
func NewAnnouncementStore(db *Database) *AnnouncementStore {
	return &AnnouncementStore{coll: db.collection(announcementsCollection)}
}

// Create inserts the announcement.
func (s *AnnouncementStore) Create(ctx context.Context, announcement *domain.Announcement) (store.InsertResult, error) {
	return insertOne(ctx, s.coll, announcement)
}

// List returns all announcements in insertion order.
func (s *AnnouncementStore) List(ctx context.Context) ([]domain.Announcement, error) {
	return findAll[domain.Announcement](ctx, s.coll, bson.M{}, nil)
}
