package booking

import (
	"strconv"

	"soundhire/internal/domain"
	"soundhire/internal/pkg/money"
)

// BookingForm is the customer submission. EventDate arrives as YYYY-MM-DD
// from the date input; PackageID as the selected choice value.
type BookingForm struct {
	CustomerName  string `form:"customer_name" validate:"required,max=200"`
	CustomerEmail string `form:"customer_email" validate:"required,email"`
	CustomerPhone string `form:"customer_phone" validate:"required,max=20"`
	EventDate     string `form:"event_date" validate:"required"`
	PackageID     string `form:"package_id" validate:"required"`
	IncludeDJ     bool   `form:"include_dj"`
	Notes         string `form:"notes"`
}

// PackageChoice is one selectable option of the booking form, built fresh
// per request from the current package snapshot.
type PackageChoice struct {
	ID    string
	Label string
}

// BuildChoices renders each package as "{name} - UGX {rate}", with the DJ
// add-on appended while the fee is above zero.
func BuildChoices(packages []domain.Package, djRate float64) []PackageChoice {
	choices := make([]PackageChoice, 0, len(packages))
	for _, pkg := range packages {
		label := pkg.Name + " - " + money.UGX(pkg.DailyRate)
		if djRate > 0 {
			label += " (+" + money.UGX(djRate) + " for DJ)"
		}
		choices = append(choices, PackageChoice{
			ID:    strconv.FormatInt(pkg.ID, 10),
			Label: label,
		})
	}
	return choices
}

// Confirmation is the one-time payload shown on the success page.
type Confirmation struct {
	BookingID     int64
	CustomerName  string
	CustomerEmail string
	PackageName   string
}
