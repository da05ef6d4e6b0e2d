package booking

import (
	"context"

	"soundhire/internal/domain"
)

// PackageReader supplies the current package snapshot.
type PackageReader interface {
	FetchAll(ctx context.Context) []domain.Package
}

// SettingReader supplies the DJ add-on fee.
type SettingReader interface {
	DJRate(ctx context.Context) float64
}

// BookingCreator persists a new booking, nil on failure.
type BookingCreator interface {
	Create(ctx context.Context, b domain.Booking) *domain.Booking
}
