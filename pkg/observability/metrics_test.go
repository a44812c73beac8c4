package observability_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnEvaluate(ctx, &domain.EvaluationEvent{Automaton: domain.Custom, Accepted: true, Symbols: 2})
	hooks.OnEvaluate(ctx, &domain.EvaluationEvent{Automaton: domain.Custom, Accepted: true, Symbols: 5})
	hooks.OnEvaluate(ctx, &domain.EvaluationEvent{Automaton: domain.Binario, Accepted: false, Symbols: 3})
	hooks.OnReject(ctx, &domain.RejectEvent{Reason: domain.ErrMissingField})
	hooks.OnReject(ctx, &domain.RejectEvent{Reason: domain.ErrUnknownAutomaton})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("custom", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("binario", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("missing_field")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("unknown_automaton")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Symbols))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := observability.NewMetrics()
	m.ObserveHTTP("POST", "/api/automata/process", 200, 3*time.Millisecond)
	m.ObserveHTTP("POST", "/api/automata/process", 400, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/api/automata/process", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics()
	m.Hooks().OnEvaluate(context.Background(), &domain.EvaluationEvent{Automaton: domain.Vocales})

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `automata_evaluations_total{accepted="false",automaton="vocales"} 1`))
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "other", observability.RejectReason(errors.New("x")))
	assert.Equal(t, "missing_field", observability.RejectReason(domain.ErrMissingField))
}
