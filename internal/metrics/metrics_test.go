package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementOTPRequest("send", "ok")
	m.IncrementOTPRequest("send", "ok")
	m.IncrementOTPVerification("invalid")
	m.IncrementSignup("ok")
	m.IncrementProfileMutation("address", "save")
	m.SetOpenProfiles(3)
	m.ObserveRPC("/memberportal.v1.AuthService/Signup", "ok", time.Now())
	m.ObserveOTPGateway(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OTPRequests.WithLabelValues("send", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OTPVerifications.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProfileMutations.WithLabelValues("address", "save")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.OpenProfiles))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 7)
}

func TestNewRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) }, "duplicate registration")
}
