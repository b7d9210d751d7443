package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveUpload(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpload("syllabus", nil)
	m.ObserveUpload("syllabus", errors.New("boom"))
	m.ObserveUpload("syllabus", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UploadsTotal.WithLabelValues("syllabus", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsTotal.WithLabelValues("syllabus", "error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpload("course-content", nil)
		m.ObserveSubmission()
	})
}
