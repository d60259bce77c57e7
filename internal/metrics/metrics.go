package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "court_scheduler",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	slotsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "court_scheduler",
		Name:      "slots_created_total",
		Help:      "Weekly slots created.",
	})

	slotConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "court_scheduler",
		Name:      "slot_conflicts_total",
		Help:      "Slot writes rejected because of an overlapping window.",
	})

	reservationsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "court_scheduler",
		Name:      "reservations_created_total",
		Help:      "Reservations confirmed.",
	})

	bookingConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "court_scheduler",
		Name:      "booking_conflicts_total",
		Help:      "Reservations rejected because a slot was already booked.",
	})
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			slotsCreated,
			slotConflicts,
			reservationsCreated,
			bookingConflicts,
		)
	})
}

// IncHTTP increments the counter for an endpoint label.
func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncSlotCreated()        { slotsCreated.Inc() }
func IncSlotConflict()       { slotConflicts.Inc() }
func IncReservationCreated() { reservationsCreated.Inc() }
func IncBookingConflict()    { bookingConflicts.Inc() }
