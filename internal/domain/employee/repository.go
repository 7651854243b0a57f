package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ExistsByEmailOrContact reports which of the unique fields are already taken.
	ExistsByEmailOrContact(ctx context.Context, email, contact string) (emailTaken bool, contactTaken bool, err error)

	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}
