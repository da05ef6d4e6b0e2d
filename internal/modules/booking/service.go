package booking

import (
	"context"
	"strconv"
	"time"

	"soundhire/internal/domain"
	"soundhire/internal/pkg/metrics"
	"soundhire/internal/pkg/validator"
)

// maxAdvanceDays bounds how far ahead an event may be booked.
const maxAdvanceDays = 365

const dateLayout = "2006-01-02"

type Service struct {
	packages PackageReader
	settings SettingReader
	bookings BookingCreator
}

func NewService(packages PackageReader, settings SettingReader, bookings BookingCreator) *Service {
	return &Service{
		packages: packages,
		settings: settings,
		bookings: bookings,
	}
}

func (s *Service) Packages(ctx context.Context) []domain.Package {
	return s.packages.FetchAll(ctx)
}

func (s *Service) DJRate(ctx context.Context) float64 {
	return s.settings.DJRate(ctx)
}

// ValidateForm checks the submission against the current package snapshot
// and returns the selected package plus a field->message map, nil when valid.
func (s *Service) ValidateForm(form BookingForm, packages []domain.Package) (*domain.Package, map[string]string) {
	errs := validator.Validate(form)
	if errs == nil {
		errs = make(map[string]string)
	}

	if _, present := errs["EventDate"]; !present {
		if msg := validateEventDate(form.EventDate, time.Now()); msg != "" {
			errs["EventDate"] = msg
		}
	}

	var selected *domain.Package
	if _, present := errs["PackageID"]; !present {
		selected = resolvePackage(form.PackageID, packages)
		if selected == nil {
			errs["PackageID"] = "Invalid package selected. Please try again."
		}
	}

	if len(errs) == 0 {
		return selected, nil
	}
	return selected, errs
}

// Submit validates a submission, prices it from the snapshot rates, and
// persists it with status pending. The packages and djRate arguments are the
// per-request snapshot fetched by the handler; no caching happens here.
func (s *Service) Submit(ctx context.Context, form BookingForm, packages []domain.Package, djRate float64) (*Confirmation, map[string]string, error) {
	selected, errs := s.ValidateForm(form, packages)
	if errs != nil {
		return nil, errs, nil
	}

	b := domain.Booking{
		CustomerName: form.CustomerName,
		Email:        form.CustomerEmail,
		Phone:        form.CustomerPhone,
		StartDate:    form.EventDate,
		EndDate:      form.EventDate,
		PackageID:    selected.ID,
		Qty:          1,
		IncludeDJ:    form.IncludeDJ,
		TotalPrice:   Total(*selected, form.IncludeDJ, djRate),
		Status:       domain.BookingPending,
	}

	created := s.bookings.Create(ctx, b)
	if created == nil {
		return nil, nil, ErrStoreWrite
	}

	metrics.BookingsCreated.Inc()

	return &Confirmation{
		BookingID:     created.ID,
		CustomerName:  created.CustomerName,
		CustomerEmail: created.Email,
		PackageName:   selected.Name,
	}, nil, nil
}

func validateEventDate(value string, now time.Time) string {
	d, err := time.ParseInLocation(dateLayout, value, now.Location())
	if err != nil {
		return "Enter a valid date."
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return "Event date cannot be in the past. Please select a future date."
	}
	if d.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return "Event date cannot be more than 1 year in the future."
	}
	return ""
}

func resolvePackage(id string, packages []domain.Package) *domain.Package {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil
	}
	for i := range packages {
		if packages[i].ID == parsed {
			return &packages[i]
		}
	}
	return nil
}
