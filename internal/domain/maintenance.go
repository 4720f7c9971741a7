package domain

import "time"

// Maintenance is a scheduled IT maintenance window.
type Maintenance struct {
	ID          int64
	Title       string
	Description string
	Date        string
	Status      string
	CreatedAt   time.Time
}
