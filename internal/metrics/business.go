package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records domain-level counters: authentication pipeline
// decisions and placed orders.
type BusinessMetrics struct {
	authDecisionCounter metric.Int64Counter
	loginCounter        metric.Int64Counter
	orderCounter        metric.Int64Counter
}

// NewBusinessMetrics creates the business metric instruments under the given namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (*BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	authDecisionCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_auth_decisions_total", namespace),
		metric.WithDescription("Total number of authorization pipeline decisions"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth decision counter: %w", err)
	}

	loginCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_logins_total", namespace),
		metric.WithDescription("Total number of login attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create login counter: %w", err)
	}

	orderCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_orders_placed_total", namespace),
		metric.WithDescription("Total number of placed orders"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order counter: %w", err)
	}

	return &BusinessMetrics{
		authDecisionCounter: authDecisionCounter,
		loginCounter:        loginCounter,
		orderCounter:        orderCounter,
	}, nil
}

// RecordAuthDecision records one authorization pipeline decision
// ("allow", "unauthenticated" or "forbidden").
func (m *BusinessMetrics) RecordAuthDecision(ctx context.Context, decision string) {
	if m == nil {
		return
	}
	m.authDecisionCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("decision", decision),
	))
}

// RecordLogin records one login attempt with its outcome ("success" or "failure").
func (m *BusinessMetrics) RecordLogin(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.loginCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordOrderPlaced records one successfully placed order.
func (m *BusinessMetrics) RecordOrderPlaced(ctx context.Context) {
	if m == nil {
		return
	}
	m.orderCounter.Add(ctx, 1)
}
