package domain

import "time"

// Policy is an HR policy record.
type Policy struct {
	ID        int64
	Title     string
	Content   string
	Status    string
	CreatedAt time.Time
}
