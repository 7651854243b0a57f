package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	employeeCollection   = "employees"
	attendanceCollection = "attendances"

	opTimeout = 5 * time.Second
)

// EnsureIndexes creates the unique employee indexes and the timestamp
// indexes report queries scan. It is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 2*opTimeout)
	defer cancel()

	_, err := db.Collection(employeeCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
		{Keys: bson.D{{Key: "contact", Value: 1}}, Options: options.Index().SetUnique(true).SetName("contact_unique")},
	})
	if err != nil {
		return fmt.Errorf("create employee indexes: %w", err)
	}

	_, err = db.Collection(attendanceCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create attendance indexes: %w", err)
	}

	return nil
}
