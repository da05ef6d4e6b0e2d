package admin

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"soundhire/internal/domain"
	"soundhire/internal/pkg/metrics"
)

type Service struct {
	bookings BookingStore
	packages PackageReader
	settings SettingReader

	accessCode     string
	accessCodeHash string
}

func NewService(bookings BookingStore, packages PackageReader, settings SettingReader, accessCode, accessCodeHash string) *Service {
	return &Service{
		bookings:       bookings,
		packages:       packages,
		settings:       settings,
		accessCode:     accessCode,
		accessCodeHash: accessCodeHash,
	}
}

// Authenticate compares a submitted access code against the configured
// secret. The bcrypt hash takes precedence when both are configured.
func (s *Service) Authenticate(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		metrics.AdminLoginFailures.Inc()
		return ErrBadAccessCode
	}

	if s.accessCodeHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.accessCodeHash), []byte(code)) != nil {
			metrics.AdminLoginFailures.Inc()
			return ErrBadAccessCode
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(s.accessCode)) != 1 {
		metrics.AdminLoginFailures.Inc()
		return ErrBadAccessCode
	}
	return nil
}

// NormalizeFilter maps any unrecognized status value to "all".
func NormalizeFilter(filter string) string {
	if domain.ValidStatusFilter(filter) {
		return filter
	}
	return "all"
}

// Dashboard fetches the filtered bookings together with a fresh package and
// rate snapshot, enriches each row, and computes the aggregates.
func (s *Service) Dashboard(ctx context.Context, filter string) *Dashboard {
	filter = NormalizeFilter(filter)

	bookings := s.bookings.List(ctx, filter)
	packages := s.packages.FetchAll(ctx)
	djRate := s.settings.DJRate(ctx)

	lookup := make(map[int64]domain.Package, len(packages))
	for _, pkg := range packages {
		lookup[pkg.ID] = pkg
	}

	view := &Dashboard{
		Filter:   filter,
		Bookings: make([]DashboardBooking, 0, len(bookings)),
	}

	for _, b := range bookings {
		row := DashboardBooking{
			Booking:   b,
			EventDate: b.StartDate,
		}
		if pkg, ok := lookup[b.PackageID]; ok {
			row.PackageName = pkg.Name
			row.PackagePrice = pkg.DailyRate
		}
		if b.IncludeDJ {
			row.DJFee = djRate
		}
		view.Bookings = append(view.Bookings, row)

		switch b.Status {
		case domain.BookingPending:
			view.Pending++
		case domain.BookingConfirmed:
			view.Confirmed++
			view.Revenue += b.TotalPrice
		case domain.BookingCancelled:
			view.Cancelled++
		}
	}
	view.Total = len(bookings)

	return view
}

// Transition issues the status update unconditionally: there is no terminal
// state guard, the store's last write wins. A nil update result is
// disambiguated with a follow-up read so the caller can report "not found"
// separately from a store failure.
func (s *Service) Transition(ctx context.Context, id int64, target domain.BookingStatus) (*domain.Booking, error) {
	updated := s.bookings.UpdateStatus(ctx, id, target)
	if updated == nil {
		if existing := s.bookings.GetByID(ctx, id); existing == nil {
			return nil, ErrBookingNotFound
		}
		return nil, ErrUpdateFailed
	}

	metrics.StatusTransitions.WithLabelValues(string(target)).Inc()
	return updated, nil
}
