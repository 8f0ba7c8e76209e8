package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "catalog",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	}, []string{"activity"})
	signupRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "catalog",
		Name:      "signup_rejections_total",
		Help:      "Number of rejected signup attempts by reason.",
	}, []string{"reason"})
	unregistrationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "catalog",
		Name:      "unregistrations_total",
		Help:      "Number of participants removed from activities.",
	}, []string{"activity"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "catalog",
		Name:      "participants",
		Help:      "Current number of registered participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, signupRejectedCounter, unregistrationCounter, participantsGauge)
}

// RecordSignup counts a successful signup.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordSignupRejected counts a rejected signup attempt.
func RecordSignupRejected(reason string) {
	signupRejectedCounter.WithLabelValues(reason).Inc()
}

// RecordUnregistration counts a participant removal.
func RecordUnregistration(activity string) {
	unregistrationCounter.WithLabelValues(activity).Inc()
}

// SetParticipants updates the roster size gauge for an activity.
func SetParticipants(activity string, count int) {
	participantsGauge.WithLabelValues(activity).Set(float64(count))
}
