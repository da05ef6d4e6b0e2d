package domain

// Package is a rentable equipment bundle. Rows are created and mutated only
// in the hosted store; this service reads them.
type Package struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	DailyRate   float64 `json:"daily_rate"`
	Stock       int     `json:"stock"`
}

// DefaultDJRate is used when the settings row is missing or unreadable.
const DefaultDJRate = 550000

// Setting is the single settings row (id=1) holding the DJ add-on fee.
type Setting struct {
	ID          int64   `json:"id"`
	DJDailyRate float64 `json:"dj_daily_rate"`
}
