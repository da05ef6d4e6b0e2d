package admin

import (
	"context"

	"soundhire/internal/domain"
)

type BookingStore interface {
	List(ctx context.Context, statusFilter string) []domain.Booking
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) *domain.Booking
	GetByID(ctx context.Context, id int64) *domain.Booking
}

type PackageReader interface {
	FetchAll(ctx context.Context) []domain.Package
}

type SettingReader interface {
	DJRate(ctx context.Context) float64
}
