package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	slotMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightsched_slot_mutations_total",
			Help: "Availability slot mutations by resulting status",
		},
		[]string{"status"},
	)

	bookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightsched_bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	cancellations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightsched_cancellations_total",
			Help: "Reservation cancellations by outcome",
		},
		[]string{"outcome"},
	)
)

func SlotMarked(status string) {
	slotMutations.WithLabelValues(status).Inc()
}

func BookingAttempt(outcome string) {
	bookings.WithLabelValues(outcome).Inc()
}

func Cancellation(outcome string) {
	cancellations.WithLabelValues(outcome).Inc()
}
