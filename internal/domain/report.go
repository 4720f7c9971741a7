package domain

import "time"

// Report is an HR report record.
type Report struct {
	ID        int64
	Title     string
	Date      string
	Status    string
	CreatedAt time.Time
}
