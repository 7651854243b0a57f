package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type employeeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Contact   string             `bson:"contact"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d employeeDocument) toDomain() employee.Employee {
	return employee.Employee{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Contact:   d.Contact,
		CreatedAt: d.CreatedAt,
	}
}

type employeeRepositoryImpl struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) employee.EmployeeRepository {
	return &employeeRepositoryImpl{collection: db.Collection(employeeCollection)}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := employeeDocument{
		ID:        primitive.NewObjectID(),
		Name:      newEmployee.Name,
		Email:     newEmployee.Email,
		Contact:   newEmployee.Contact,
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "contact") {
				return employee.Employee{}, employee.ErrContactExists
			}
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}

	return doc.toDomain(), nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *employeeRepositoryImpl) findOne(ctx context.Context, filter bson.M) (employee.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc employeeDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("find employee: %w", err)
	}
	return doc.toDomain(), nil
}

// ExistsByEmailOrContact implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmailOrContact(ctx context.Context, email, contact string) (bool, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	emailCount, err := r.collection.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, false, fmt.Errorf("count employees by email: %w", err)
	}
	contactCount, err := r.collection.CountDocuments(ctx, bson.M{"contact": contact}, options.Count().SetLimit(1))
	if err != nil {
		return false, false, fmt.Errorf("count employees by contact: %w", err)
	}

	return emailCount > 0, contactCount > 0, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, doc.toDomain())
	}
	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return employee.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
