package store

import (
	"context"
	"fmt"
	"log"

	"soundhire/internal/domain"
	"soundhire/internal/pkg/metrics"
)

type BookingRepository struct {
	client *Client
}

func NewBookingRepository(client *Client) *BookingRepository {
	return &BookingRepository{client: client}
}

// Create inserts a booking and returns the stored row with its assigned id,
// or nil when the insert fails.
func (r *BookingRepository) Create(ctx context.Context, b domain.Booking) *domain.Booking {
	var rows []domain.Booking

	resp, err := r.client.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(b).
		SetResult(&rows).
		Post("/bookings")
	if err != nil {
		metrics.StoreErrors.WithLabelValues("create_booking").Inc()
		log.Printf("store create_booking failed: %v", err)
		return nil
	}
	if resp.IsError() {
		metrics.StoreErrors.WithLabelValues("create_booking").Inc()
		log.Printf("store create_booking failed: status=%d body=%s", resp.StatusCode(), resp.String())
		return nil
	}

	if len(rows) == 0 {
		metrics.StoreErrors.WithLabelValues("create_booking").Inc()
		log.Print("store create_booking failed: no row returned")
		return nil
	}

	created := rows[0]
	log.Printf("store create_booking: id=%d customer=%q", created.ID, created.CustomerName)
	return &created
}

// List returns bookings ordered by start date descending. A recognized
// non-"all" statusFilter restricts the result; anything else is unfiltered.
func (r *BookingRepository) List(ctx context.Context, statusFilter string) []domain.Booking {
	var bookings []domain.Booking

	req := r.client.http.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "start_date.desc").
		SetResult(&bookings)

	if statusFilter != "" && statusFilter != "all" && domain.ValidStatusFilter(statusFilter) {
		req.SetQueryParam("status", "eq."+statusFilter)
	}

	resp, err := req.Get("/bookings")
	if err != nil {
		metrics.StoreErrors.WithLabelValues("list_bookings").Inc()
		log.Printf("store list_bookings failed: %v", err)
		return nil
	}
	if resp.IsError() {
		metrics.StoreErrors.WithLabelValues("list_bookings").Inc()
		log.Printf("store list_bookings failed: status=%d body=%s", resp.StatusCode(), resp.String())
		return nil
	}

	log.Printf("store list_bookings: fetched %d bookings", len(bookings))
	return bookings
}

// UpdateStatus sets a booking's status by id and returns the updated row,
// or nil when the update fails or matches no row.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) *domain.Booking {
	var rows []domain.Booking

	resp, err := r.client.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", fmt.Sprintf("eq.%d", id)).
		SetBody(map[string]string{"status": string(status)}).
		SetResult(&rows).
		Patch("/bookings")
	if err != nil {
		metrics.StoreErrors.WithLabelValues("update_booking_status").Inc()
		log.Printf("store update_booking_status failed: id=%d err=%v", id, err)
		return nil
	}
	if resp.IsError() {
		metrics.StoreErrors.WithLabelValues("update_booking_status").Inc()
		log.Printf("store update_booking_status failed: id=%d status=%d body=%s", id, resp.StatusCode(), resp.String())
		return nil
	}

	if len(rows) == 0 {
		log.Printf("store update_booking_status: id=%d no row returned", id)
		return nil
	}

	updated := rows[0]
	log.Printf("store update_booking_status: id=%d status=%s", id, status)
	return &updated
}

// GetByID returns a single booking or nil when absent.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) *domain.Booking {
	var rows []domain.Booking

	resp, err := r.client.http.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("id", fmt.Sprintf("eq.%d", id)).
		SetResult(&rows).
		Get("/bookings")
	if err != nil {
		metrics.StoreErrors.WithLabelValues("get_booking").Inc()
		log.Printf("store get_booking failed: id=%d err=%v", id, err)
		return nil
	}
	if resp.IsError() {
		metrics.StoreErrors.WithLabelValues("get_booking").Inc()
		log.Printf("store get_booking failed: id=%d status=%d body=%s", id, resp.StatusCode(), resp.String())
		return nil
	}

	if len(rows) == 0 {
		log.Printf("store get_booking: id=%d not found", id)
		return nil
	}

	booking := rows[0]
	log.Printf("store get_booking: id=%d", id)
	return &booking
}
