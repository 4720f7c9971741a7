package domain

import "time"

// Employee is an HR directory entry.
type Employee struct {
	ID         int64
	Name       string
	Position   string
	Department string
	Email      string
	CreatedAt  time.Time
}
