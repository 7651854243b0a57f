package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type employeeRepositoryImpl struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepositoryImpl{employees: make(map[string]employee.Employee)}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return employee.Employee{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, emp := range r.employees {
		if emp.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
		if emp.Contact == newEmployee.Contact {
			return employee.Employee{}, employee.ErrContactExists
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, err
	}
	newEmployee.ID = id.String()
	if newEmployee.CreatedAt.IsZero() {
		newEmployee.CreatedAt = time.Now()
	}

	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return employee.Employee{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return employee.Employee{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// ExistsByEmailOrContact implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmailOrContact(ctx context.Context, email, contact string) (bool, bool, error) {
	if err := ctx.Err(); err != nil {
		return false, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var emailTaken, contactTaken bool
	for _, emp := range r.employees {
		emailTaken = emailTaken || emp.Email == email
		contactTaken = contactTaken || emp.Contact == contact
	}
	return emailTaken, contactTaken, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	employees := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		employees = append(employees, emp)
	}
	r.mu.RUnlock()

	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Name != employees[j].Name {
			return employees[i].Name < employees[j].Name
		}
		return employees[i].ID < employees[j].ID
	})
	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}
