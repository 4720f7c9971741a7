package domain

import "time"

// Ticket is an IT support ticket.
type Ticket struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	Status      string
	User        string
	CreatedAt   time.Time
}
