package domain

// HRStats groups per-table counts for the HR view.
type HRStats struct {
	Employees int64 `json:"employees"`
	Policies  int64 `json:"policies"`
	Reports   int64 `json:"reports"`
}

// ITStats groups per-table counts for the IT view.
type ITStats struct {
	Tickets     int64 `json:"tickets"`
	Systems     int64 `json:"systems"`
	Maintenance int64 `json:"maintenance"`
}

// Stats is a point-in-time view of per-entity counts. The individual counts
// are issued as independent queries, so the set is not an atomic snapshot.
type Stats struct {
	HR             HRStats `json:"hr"`
	IT             ITStats `json:"it"`
	ChangeRequests int64   `json:"changeRequests"`
	Documents      int64   `json:"documents"`
}
