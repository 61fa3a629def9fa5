package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	leadsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gym_bot",
			Name:      "leads_created_total",
			Help:      "Count of leads persisted from completed questionnaires.",
		},
	)

	plansGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gym_bot",
			Name:      "plans_generated_total",
			Help:      "Count of diet plans successfully generated.",
		},
	)

	planFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gym_bot",
			Name:      "plan_failures_total",
			Help:      "Count of failed plan generations by failure kind.",
		},
		[]string{"kind"},
	)

	deliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gym_bot",
			Name:      "deliveries_total",
			Help:      "Count of WhatsApp delivery attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(leadsCreated, plansGenerated, planFailures, deliveries)
	})
}

func IncLeadCreated() {
	leadsCreated.Inc()
}

func IncPlanGenerated() {
	plansGenerated.Inc()
}

func IncPlanFailure(kind string) {
	planFailures.WithLabelValues(kind).Inc()
}

func IncDelivery(outcome string) {
	deliveries.WithLabelValues(outcome).Inc()
}
