package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type attendanceDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeName string             `bson:"employeeName"`
	EmployeeID   primitive.ObjectID `bson:"employeeId"`
	Location     *locationDocument  `bson:"location,omitempty"`
	Timestamp    time.Time          `bson:"timestamp"`
}

type locationDocument struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
	PlaceName string  `bson:"placeName"`
}

func (d attendanceDocument) toDomain() attendance.Attendance {
	a := attendance.Attendance{
		ID:           d.ID.Hex(),
		EmployeeID:   d.EmployeeID.Hex(),
		EmployeeName: d.EmployeeName,
		Timestamp:    d.Timestamp,
	}
	if d.Location != nil {
		a.Location = &attendance.Location{
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
			PlaceName: d.Location.PlaceName,
		}
	}
	return a
}

type attendanceRepositoryImpl struct {
	collection *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{collection: db.Collection(attendanceCollection)}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	employeeID, err := primitive.ObjectIDFromHex(newAttendance.EmployeeID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("invalid employee id %q: %w", newAttendance.EmployeeID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := attendanceDocument{
		ID:           primitive.NewObjectID(),
		EmployeeName: newAttendance.EmployeeName,
		EmployeeID:   employeeID,
		Timestamp:    newAttendance.Timestamp,
	}
	if loc := newAttendance.Location; loc != nil {
		doc.Location = &locationDocument{Latitude: loc.Latitude, Longitude: loc.Longitude, PlaceName: loc.PlaceName}
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return attendance.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}

	// BSON dates keep millisecond precision only
	doc.Timestamp = doc.Timestamp.Truncate(time.Millisecond)
	return doc.toDomain(), nil
}

// ListBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	return r.find(ctx, bson.M{
		"timestamp": bson.M{"$gte": start, "$lte": end},
	})
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	objID, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return []attendance.Attendance{}, nil
	}

	return r.find(ctx, bson.M{
		"employeeId": objID,
		"timestamp":  bson.M{"$gte": start, "$lte": end},
	})
}

func (r *attendanceRepositoryImpl) find(ctx context.Context, filter bson.M) ([]attendance.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}

	records := make([]attendance.Attendance, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toDomain())
	}
	return records, nil
}
