package metrics

// IncrementFormCreated increments the form creation counter
func (m *Metrics) IncrementFormCreated() {
	m.safeExecute("IncrementFormCreated", func() {
		m.FormCreatedTotal.Inc()
	})
}

// IncrementSubmissionCreated increments the accepted submission counter
func (m *Metrics) IncrementSubmissionCreated() {
	m.safeExecute("IncrementSubmissionCreated", func() {
		m.SubmissionCreatedTotal.Inc()
	})
}

// SetFormsTotal sets the total forms gauge
func (m *Metrics) SetFormsTotal(count int64) {
	m.safeExecute("SetFormsTotal", func() {
		m.FormsTotal.Set(float64(count))
	})
}

// SetPublishedFormsTotal sets the published forms gauge
func (m *Metrics) SetPublishedFormsTotal(count int64) {
	m.safeExecute("SetPublishedFormsTotal", func() {
		m.PublishedFormsTotal.Set(float64(count))
	})
}

// SetResponsesTotal sets the stored responses gauge
func (m *Metrics) SetResponsesTotal(count int64) {
	m.safeExecute("SetResponsesTotal", func() {
		m.ResponsesTotal.Set(float64(count))
	})
}
