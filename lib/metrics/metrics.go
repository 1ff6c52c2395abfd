package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ObjectsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glsteps_gpu_objects_created_total",
		Help: "Total number of GPU objects allocated through the driver",
	}, []string{"kind"})
	ObjectsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glsteps_gpu_objects_deleted_total",
		Help: "Total number of GPU objects released through the driver",
	}, []string{"kind"})
	ObjectsLive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "glsteps_gpu_objects_live",
		Help: "Number of GPU objects currently owned by a wrapper",
	}, []string{"kind"})
	BytesUploaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glsteps_gpu_bytes_uploaded_total",
		Help: "Total number of bytes uploaded into buffers and textures",
	}, []string{"kind"})
	FramesDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glsteps_frames_drawn_total",
		Help: "Total number of frames started by the renderer",
	})
	DrawCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glsteps_draw_calls_total",
		Help: "Total number of indexed draw calls issued",
	})
)

// ObjectMetrics tracks the lifetime of one kind of GPU object.
type ObjectMetrics struct {
	Created  prometheus.Counter
	Deleted  prometheus.Counter
	Live     prometheus.Gauge
	Uploaded prometheus.Counter
}

func NewObjectMetrics(kind string) ObjectMetrics {
	o := ObjectMetrics{
		Created:  ObjectsCreated.WithLabelValues(kind),
		Deleted:  ObjectsDeleted.WithLabelValues(kind),
		Live:     ObjectsLive.WithLabelValues(kind),
		Uploaded: BytesUploaded.WithLabelValues(kind),
	}
	o.Created.Add(0)
	o.Deleted.Add(0)
	o.Uploaded.Add(0)
	return o
}

func (o ObjectMetrics) ObjectCreated() {
	o.Created.Inc()
	o.Live.Inc()
}

func (o ObjectMetrics) ObjectDeleted() {
	o.Deleted.Inc()
	o.Live.Dec()
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
