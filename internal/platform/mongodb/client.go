package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skyviewhq/skyview-api/internal/config"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// Collection names used by the SkyView database.
const (
	usersCollection         = "users"
	apartmentsCollection    = "apartments"
	agreementsCollection    = "agreements"
	couponsCollection       = "coupons"
	announcementsCollection = "announcements"
	paymentsCollection      = "payments"
)

// Database wraps the long-lived MongoDB client and the application
// database handle. One Database is created at startup, shared by every
// store, and closed on shutdown.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Ensure Database implements store.Transactor.
var _ store.Transactor = (*Database)(nil)

// Connect establishes the MongoDB connection using Stable API v1 and
// verifies it with a ping before returning.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		// Best-effort disconnect; the ping failure is the error that matters.
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

// Close disconnects the underlying client.
func (d *Database) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

// WithinTransaction implements store.Transactor. The session context passed
// to fn is a context.Context, so store calls made with it join the
// transaction transparently.
func (d *Database) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := d.client.StartSession()
	if err != nil {
		return fmt.Errorf("%w: failed to start session: %v", store.ErrTransactionFailed, err)
	}
	defer session.EndSession(ctx)

	// Callback errors pass through unchanged so callers can still match
	// store sentinels with errors.Is; only session startup is wrapped.
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// collection returns a handle to the named collection of the application
// database.
func (d *Database) collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}
