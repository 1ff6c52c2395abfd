package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, c prometheus.Metric) float64 {
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	if m.Counter != nil {
		return m.Counter.GetValue()
	}
	return m.Gauge.GetValue()
}

func TestObjectMetricsLifetime(t *testing.T) {
	o := NewObjectMetrics("metrics_test_object")

	o.ObjectCreated()
	o.ObjectCreated()
	o.ObjectDeleted()

	assert.Equal(t, 2.0, value(t, o.Created))
	assert.Equal(t, 1.0, value(t, o.Deleted))
	assert.Equal(t, 1.0, value(t, o.Live))
	assert.Equal(t, 0.0, value(t, o.Uploaded))
}
