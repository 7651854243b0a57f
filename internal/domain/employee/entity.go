package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	Email     string
	Contact   string
	CreatedAt time.Time
}
