package domain

import "time"

// System is a monitored IT system.
type System struct {
	ID        int64
	Name      string
	Status    string
	Uptime    string
	LastCheck string
	CreatedAt time.Time
}
