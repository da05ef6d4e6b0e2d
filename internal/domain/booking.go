package domain

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidStatusFilter reports whether s is usable as a dashboard filter value.
func ValidStatusFilter(s string) bool {
	switch s {
	case "all", string(BookingPending), string(BookingConfirmed), string(BookingCancelled):
		return true
	}
	return false
}

// Booking mirrors a row of the hosted store's bookings collection.
// StartDate and EndDate travel as YYYY-MM-DD strings over the REST API;
// both carry the single event date, multi-day rentals are not supported.
type Booking struct {
	ID           int64         `json:"id,omitempty"`
	CustomerName string        `json:"customer_name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	PackageID    int64         `json:"package_id"`
	Qty          int           `json:"qty"`
	IncludeDJ    bool          `json:"include_dj"`
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"status"`
}
