package models

// Stats holds the dashboard counters. The books and electronics buckets are
// independent keyword matches over active item names and may overlap.
// swagger:model Stats
type Stats struct {
	Active      int `json:"active" db:"active"`
	Returned    int `json:"returned" db:"returned"`
	Books       int `json:"books" db:"books"`
	Electronics int `json:"electronics" db:"electronics"`
	Lost        int `json:"lost" db:"lost"`
	Found       int `json:"found" db:"found"`
}
