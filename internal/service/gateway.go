package service

import (
	"context"
	"time"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/metrics"
	"github.com/mmynk/memberportal/internal/models"
)

// meteredGateway times every call to the wrapped OTP gateway.
type meteredGateway struct {
	next    auth.Gateway
	metrics *metrics.Metrics
}

// NewMeteredGateway wraps gw so each Issue and Validate call is observed in m.
func NewMeteredGateway(gw auth.Gateway, m *metrics.Metrics) auth.Gateway {
	return &meteredGateway{next: gw, metrics: m}
}

func (g *meteredGateway) Issue(ctx context.Context, id models.Identity) error {
	defer g.metrics.ObserveOTPGateway(time.Now())
	return g.next.Issue(ctx, id)
}

func (g *meteredGateway) Validate(ctx context.Context, memberID, code string) error {
	defer g.metrics.ObserveOTPGateway(time.Now())
	return g.next.Validate(ctx, memberID, code)
}
