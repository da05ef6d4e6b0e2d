package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundhire_bookings_created_total",
		Help: "Total number of bookings accepted through the public form",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundhire_booking_status_transitions_total",
		Help: "Total number of admin status transitions by target status",
	}, []string{"status"})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundhire_store_errors_total",
		Help: "Total number of failed hosted-store operations",
	}, []string{"operation"})

	AdminLoginFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundhire_admin_login_failures_total",
		Help: "Total number of rejected admin access codes",
	})
)
