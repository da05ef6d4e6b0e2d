package admin

import "soundhire/internal/domain"

type LoginForm struct {
	AccessCode string `form:"access_code" validate:"required,max=100"`
}

// DashboardBooking is a booking enriched with package and pricing details
// for display.
type DashboardBooking struct {
	domain.Booking

	PackageName  string
	PackagePrice float64
	DJFee        float64
	EventDate    string
}

// Dashboard aggregates the filtered booking list. Counts and revenue are
// computed over the fetched list, so a restrictive filter narrows them too.
type Dashboard struct {
	Filter   string
	Bookings []DashboardBooking

	Total     int
	Pending   int
	Confirmed int
	Cancelled int
	Revenue   float64
}
