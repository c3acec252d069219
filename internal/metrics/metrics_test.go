package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("failed to read gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

// TestMetricsInitialization tests that all metrics are properly initialized
func TestMetricsInitialization(t *testing.T) {
	m := getTestMetrics()

	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal should not be nil")
	}
	if m.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration should not be nil")
	}
	if m.DBConnectionsOpen == nil {
		t.Error("DBConnectionsOpen should not be nil")
	}
	if m.DBConnectionsInUse == nil {
		t.Error("DBConnectionsInUse should not be nil")
	}
	if m.DBConnectionsIdle == nil {
		t.Error("DBConnectionsIdle should not be nil")
	}
	if m.DBConnectionsMax == nil {
		t.Error("DBConnectionsMax should not be nil")
	}
	if m.DBConnectionWaitTotal == nil {
		t.Error("DBConnectionWaitTotal should not be nil")
	}
	if m.DBConnectionWaitDuration == nil {
		t.Error("DBConnectionWaitDuration should not be nil")
	}
	if m.DBQueryDuration == nil {
		t.Error("DBQueryDuration should not be nil")
	}
	if m.DBQueryErrors == nil {
		t.Error("DBQueryErrors should not be nil")
	}
	if m.FormsTotal == nil {
		t.Error("FormsTotal should not be nil")
	}
	if m.PublishedFormsTotal == nil {
		t.Error("PublishedFormsTotal should not be nil")
	}
	if m.ResponsesTotal == nil {
		t.Error("ResponsesTotal should not be nil")
	}
	if m.FormCreatedTotal == nil {
		t.Error("FormCreatedTotal should not be nil")
	}
	if m.SubmissionCreatedTotal == nil {
		t.Error("SubmissionCreatedTotal should not be nil")
	}
}

func TestIncrementFormCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.FormCreatedTotal)
	m.IncrementFormCreated()
	newValue := getCounterValue(t, m.FormCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementSubmissionCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.SubmissionCreatedTotal)
	m.IncrementSubmissionCreated()
	newValue := getCounterValue(t, m.SubmissionCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestSetBusinessGauges(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero", 0},
		{"one", 1},
		{"many", 42},
		{"large", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetFormsTotal(tt.count)
			if v := getGaugeValue(t, m.FormsTotal); v != float64(tt.count) {
				t.Errorf("FormsTotal = %f, want %d", v, tt.count)
			}
			m.SetPublishedFormsTotal(tt.count)
			if v := getGaugeValue(t, m.PublishedFormsTotal); v != float64(tt.count) {
				t.Errorf("PublishedFormsTotal = %f, want %d", v, tt.count)
			}
			m.SetResponsesTotal(tt.count)
			if v := getGaugeValue(t, m.ResponsesTotal); v != float64(tt.count) {
				t.Errorf("ResponsesTotal = %f, want %d", v, tt.count)
			}
		})
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	m := getTestMetrics()

	m.RecordHTTPRequest("POST", "/api/forms", 201, 25*time.Millisecond)

	counter, err := m.HTTPRequestsTotal.GetMetricWithLabelValues("POST", "/api/forms", "2xx")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}
	if v := getCounterValue(t, counter); v != 1 {
		t.Errorf("expected 1 recorded request, got %f", v)
	}
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{100, "unknown"},
	}
	for _, tt := range tests {
		if got := categorizeStatus(tt.code); got != tt.want {
			t.Errorf("categorizeStatus(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	skipped := []string{"/metrics", "/health", "/ready"}
	for _, path := range skipped {
		if !ShouldSkipEndpoint(path) {
			t.Errorf("expected %s to be skipped", path)
		}
	}
	if ShouldSkipEndpoint("/api/forms") {
		t.Error("expected /api/forms to be recorded")
	}
}

func TestRecordDBQuery(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("SELECT", "forms", 2*time.Millisecond, nil)
	m.RecordDBQuery("INSERT", "form_responses", 3*time.Millisecond, prometheus.AlreadyRegisteredError{})

	errCounter, err := m.DBQueryErrors.GetMetricWithLabelValues("insert", "form_responses")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}
	if v := getCounterValue(t, errCounter); v != 1 {
		t.Errorf("expected 1 query error, got %f", v)
	}

	okCounter, err := m.DBQueryErrors.GetMetricWithLabelValues("select", "forms")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}
	if v := getCounterValue(t, okCounter); v != 0 {
		t.Errorf("expected no error for successful query, got %f", v)
	}
}

// Metric methods must survive a partially constructed Metrics value
func TestSafeExecuteRecoversPanics(t *testing.T) {
	m := &Metrics{}

	m.IncrementFormCreated()
	m.IncrementSubmissionCreated()
	m.SetFormsTotal(1)
	m.RecordHTTPRequest("GET", "/api/forms", 200, time.Millisecond)
	m.RecordDBQuery("SELECT", "forms", time.Millisecond, nil)
}
