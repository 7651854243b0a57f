package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Contact string `json:"contact" validate:"required,contact"`
}

// Normalize trims input and lower-cases the email so uniqueness is case-insensitive.
func (r *CreateEmployeeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Contact = strings.TrimSpace(r.Contact)
}

func (r *CreateEmployeeRequest) Validate() error {
	r.Normalize()
	return validator.Struct(r)
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	CreatedAt string `json:"createdAt"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Email:     emp.Email,
		Contact:   emp.Contact,
		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
	}
}
