// Package metrics defines the portal's Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for login, signup and profile editing.
type Metrics struct {
	OTPRequests      *prometheus.CounterVec
	OTPVerifications *prometheus.CounterVec
	Signups          *prometheus.CounterVec
	ProfileMutations *prometheus.CounterVec
	OpenProfiles     prometheus.Gauge
	RPCDuration      *prometheus.HistogramVec
	OTPGateway       prometheus.Histogram
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "memberportal_otp_requests_total",
			Help: "OTP issue requests by kind (send, resend) and outcome",
		}, []string{"kind", "outcome"}),
		OTPVerifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "memberportal_otp_verifications_total",
			Help: "OTP verification attempts by outcome",
		}, []string{"outcome"}),
		Signups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "memberportal_signups_total",
			Help: "Signup attempts by outcome",
		}, []string{"outcome"}),
		ProfileMutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "memberportal_profile_mutations_total",
			Help: "Committed profile changes by section and operation",
		}, []string{"section", "op"}),
		OpenProfiles: f.NewGauge(prometheus.GaugeOpts{
			Name: "memberportal_open_profiles",
			Help: "Profiles currently held in memory",
		}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "memberportal_rpc_duration_seconds",
			Help:    "Duration of RPC calls by procedure and code",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"procedure", "code"}),
		OTPGateway: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "memberportal_otp_gateway_duration_seconds",
			Help:    "Latency of OTP gateway calls",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementOTPRequest records an issue request. kind is "send" or "resend".
func (m *Metrics) IncrementOTPRequest(kind, outcome string) {
	m.OTPRequests.WithLabelValues(kind, outcome).Inc()
}

// IncrementOTPVerification records a verification attempt.
func (m *Metrics) IncrementOTPVerification(outcome string) {
	m.OTPVerifications.WithLabelValues(outcome).Inc()
}

// IncrementSignup records a signup attempt.
func (m *Metrics) IncrementSignup(outcome string) {
	m.Signups.WithLabelValues(outcome).Inc()
}

// IncrementProfileMutation records a committed profile change.
func (m *Metrics) IncrementProfileMutation(section, op string) {
	m.ProfileMutations.WithLabelValues(section, op).Inc()
}

// SetOpenProfiles records the number of profiles held in memory.
func (m *Metrics) SetOpenProfiles(n int) {
	m.OpenProfiles.Set(float64(n))
}

// ObserveRPC records the duration of an RPC call.
// Call with time.Now() at the start of the call.
func (m *Metrics) ObserveRPC(procedure, code string, start time.Time) {
	m.RPCDuration.WithLabelValues(procedure, code).Observe(time.Since(start).Seconds())
}

// ObserveOTPGateway records the duration of an OTP gateway call.
func (m *Metrics) ObserveOTPGateway(start time.Time) {
	m.OTPGateway.Observe(time.Since(start).Seconds())
}
